// Package endpoints holds the REST path templates of the platform services.
package endpoints

import (
	"fmt"
	"strings"
)

// Service prefixes.
const (
	ServiceUnnati   = "UNNATI"
	ServiceKendra   = "KENDRA"
	ServiceSamiksha = "SAMIKSHA"
	ServiceDhiti    = "DHITI"
	ServiceSunbird  = "SUNBIRD"
	ServiceGroup    = "GROUP"
	ServiceData     = "DATA"
)

// Services maps a service name to its path prefix.
var Services = map[string]string{
	ServiceUnnati:   "improvement-project/api/",
	ServiceKendra:   "kendra/api/",
	ServiceSamiksha: "assessment/api/",
	ServiceDhiti:    "dhiti/api/",
	ServiceSunbird:  "sunbird/api/",
	ServiceGroup:    "api/group/",
	ServiceData:     "api/data/",
}

// Group service paths.
const (
	GroupRead     = "GROUP_READ"
	GroupUpdate   = "GROUP_UPDATE"
	GroupDelete   = "GROUP_DELETE"
	FormRead      = "FORM_READ"
	GroupReadArgs = "?fields=members,activities"
)

// APIURLs maps an endpoint key to its path template. Nested tables use a
// dotted key.
var APIURLs = map[string]string{
	GroupRead:   "v1/read/",
	GroupUpdate: "v1/update",
	GroupDelete: "v1/delete",
	FormRead:    "v1/form/read",

	"PROGRAM_LISTING":     "v1/users/programs?",
	"GET_PROJECTS":        "v1/userProjects/getProject?page=",
	"SOLUTIONS_LISTING":   "v1/users/solutions/",
	"GET_PROJECT":         "v2/userProjects/details",
	"NOTIFICATIONS_LIST":  "v1/notifications/in-app/list",
	"NOTIFICATION_COUNT":  "v1/notifications/in-app/unReadCount",
	"PROJECTS_LIST":       "v1/userProjects/list",
	"LIBRARY_CATEGORIES":  "v1/library/categories/list",
	"TEMPLATES_LIST":      "v1/library/categories/projects/",
	"TEMPLATE_DATA":       "v1/library/categories/projectDetails/",
	"CREATE_PROJECT_FORM": "v1/userProjects/metaForm",
	"REGISTERDEVICE":      "v1/notifications/push/registerDevice",
	"PRIVATE_PROGRAMS":    "v1/users/privatePrograms",
	"GET_PROFILE":         "v2/user-extension/getProfile",
	"GET_STATES":          "v2/entities/listByEntityType/state",
	"GET_SUBENTITIES":     "v1/entities/subEntityTypeList/",
	"GET_ENTITY_LIST":     "v1/entities/subEntityList/",
	"IMPORT_TEMPLATE":     "v1/userProjects/importFromLibrary/",
	"GET_REPORT":          "v1/reports/entity/",
	"GET_REPORT_TYPES":    "v1/reports/types",
	"GET_FULL_REPORT":     "v1/reports/detailView/",
	"SYNC_PROJECT":        "v1/userProjects/sync/",
	"CREATE_PROJECT_DOC":  "v1/userProjects/create",
	"PROFILE_INFO":        "v1/users/getProfile",
	"PROFILE_UPDATE":      "v1/user-extension/updateProfileRoles",
	"MARK_AS_READ":        "v1/notifications/in-app/markAsRead/",

	"GET_PROG_SOL_FOR_OBSERVATION":  "v1/observations/getObservation",
	"GET_OBSERVATION_ENTITIES":      "v1/observations/entities/",
	"GET_OBSERVATION_SUBMISSIONS":   "v1/observationSubmissions/list/",
	"GET_OBSERVATION_DETAILS":       "v1/observations/assessment/",
	"OBSERVATION_SUBMISSION_DELETE": "v1/observationSubmissions/delete/",
	"OBSERVATION_SUBMISSION_CREATE": "v1/observationSubmissions/create/",
	"OBSERVATION_MAKE_SUBMISSION":   "v1/observationSubmissions/make/",
	"SUBMISSION":                    "v1/submissions/make/",

	"OBSERVATION_REPORTS.INSTANCE_REPORT":    "/observations/instance",
	"OBSERVATION_REPORTS.ENTITY_REPORT":      "/observations/entity",
	"OBSERVATION_REPORTS.OBSERVATION_REPORT": "/observations/report",
	"OBSERVATION_REPORTS.ALL_EVIDENCE":       "v1/observations/listAllEvidences",

	"CRITERIA_REPORTS.INSTANCE_REPORT":    "v1/observations/instanceReportByCriteria",
	"CRITERIA_REPORTS.ENTITY_REPORT":      "v1/observations/entityReportByCriteria",
	"CRITERIA_REPORTS.OBSERVATION_REPORT": "v1/observations/observationReportByCriteria",

	"SURVEY_FEEDBACK.SURVEY_LISTING":      "v1/surveys/getSurvey",
	"SURVEY_FEEDBACK.GET_DETAILS_BY_LINK": "v1/surveys/getDetailsByLink/",
	"SURVEY_FEEDBACK.GET_DETAILS_BY_ID":   "v2/surveys/details/",
	"SURVEY_FEEDBACK.MAKE_SUBMISSION":     "v1/surveySubmissions/make/",

	"DEEPLINK.VERIFY_OBSERVATION_LINK": "v1/solutions/verifyLink/",
}

// Resolve joins base, service prefix, endpoint template and an optional suffix
// into a URL. Unknown service or endpoint keys are an error.
func Resolve(base string, service string, endpoint string, suffix string) (string, error) {
	prefix, ok := Services[service]
	if !ok {
		return "", fmt.Errorf("unknown service %q", service)
	}
	path, ok := APIURLs[endpoint]
	if !ok {
		return "", fmt.Errorf("unknown endpoint %q", endpoint)
	}
	base = strings.TrimRight(base, "/")
	path = strings.TrimLeft(path, "/")
	return base + "/" + prefix + path + suffix, nil
}
