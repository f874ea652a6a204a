package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ActionEvent is the input event for Lambda invocation. It names a single
// administrative action to run headlessly against a group.
type ActionEvent struct {
	GroupID    string `json:"group_id" validate:"required,notblank"`
	ViewerID   string `json:"viewer_id,omitempty"`
	Action     string `json:"action" validate:"required,oneof=delete-group leave-group make-group-admin dismiss-group-admin remove-member remove-activity"`
	MemberID   string `json:"member_id,omitempty"`
	ActivityID string `json:"activity_id,omitempty"`
	Locale     string `json:"locale,omitempty"`
}

// ActionID returns the typed action id.
func (e *ActionEvent) ActionID() ActionID {
	return ActionID(e.Action)
}

// ActionResponse is the output from Lambda invocation.
type ActionResponse struct {
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Result     *WorkflowResult `json:"result,omitempty"`
}

// NewActionResponse maps a workflow result onto a response. Rejected and
// failed mutations are reported with a non-2xx status.
func NewActionResponse(result *WorkflowResult) *ActionResponse {
	status := 200
	switch {
	case result.Offline:
		status = 503
	case result.Outcome == OutcomeStructuredRejection:
		status = 409
	case result.Outcome == OutcomeTransportFailure:
		status = 502
	case !result.Confirmed || result.Action == ActionNone:
		status = 400
	}
	return &ActionResponse{
		StatusCode: status,
		Message:    fmt.Sprintf("%s: %s", result.Action, result.Path()),
		Result:     result,
	}
}

// NewInvalidEventResponse reports an event that could not be run.
func NewInvalidEventResponse(err error) *ActionResponse {
	return &ActionResponse{
		StatusCode: 400,
		Message:    err.Error(),
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(err error) *ActionResponse {
	return &ActionResponse{
		StatusCode: 500,
		Message:    err.Error(),
	}
}

var (
	validate        *validator.Validate
	validationTrans ut.Translator

	notBlankTag     = "notblank"
	actionTargetTag = "action_target"
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	validationTrans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, validationTrans)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		if str, ok := fl.Field().Interface().(string); ok {
			return strings.TrimSpace(str) != ""
		}
		return false
	})
	validate.RegisterStructValidation(actionEventStructValidation, ActionEvent{})

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{notBlankTag, actionTargetTag} {
		_ = validate.RegisterTranslation(tag, validationTrans, registerFn, translateCustomErr)
	}
}

func translateCustomErr(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fe.Field() + " cannot be blank"
	case actionTargetTag:
		return fe.Field() + " is required for this action"
	default:
		return ""
	}
}

// actionEventStructValidation requires a member for member actions and an
// activity for activity actions.
func actionEventStructValidation(sl validator.StructLevel) {
	ev, ok := sl.Current().Interface().(ActionEvent)
	if !ok {
		return
	}
	switch ActionID(ev.Action) {
	case ActionMakeGroupAdmin, ActionDismissGroupAdmin, ActionRemoveMember:
		if strings.TrimSpace(ev.MemberID) == "" {
			sl.ReportError(ev.MemberID, "member_id", "MemberID", actionTargetTag, "")
		}
	case ActionRemoveActivity:
		if strings.TrimSpace(ev.ActivityID) == "" {
			sl.ReportError(ev.ActivityID, "activity_id", "ActivityID", actionTargetTag, "")
		}
	}
}

// Validate checks the event and returns every problem in a single error.
func (e *ActionEvent) Validate() error {
	if e == nil {
		return fmt.Errorf("event is nil")
	}
	err := validate.Struct(*e)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(validationTrans))
	}
	return fmt.Errorf("invalid action event: %s", strings.Join(msgs, "; "))
}
