package metrics

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/daniloc96/group-console/internal/models"
)

// CloudWatchAPI defines the CloudWatch client interface used for metrics.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// maxDatumsPerCall is the PutMetricData request limit.
const maxDatumsPerCall = 1000

// Emitter sends interact counters to CloudWatch.
type Emitter struct {
	client    CloudWatchAPI
	namespace string
}

// NewEmitter creates a CloudWatch metrics emitter.
func NewEmitter(cfg aws.Config, namespace string) *Emitter {
	return &Emitter{
		client:    cloudwatch.NewFromConfig(cfg),
		namespace: namespace,
	}
}

// EmitInteractCounts publishes one datum per interact type and action id.
func (e *Emitter) EmitInteractCounts(ctx context.Context, counts map[models.InteractCountKey]int) error {
	keys := make([]models.InteractCountKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Type != keys[j].Type {
			return keys[i].Type < keys[j].Type
		}
		return keys[i].ActionID < keys[j].ActionID
	})

	data := make([]types.MetricDatum, 0, len(keys))
	for _, k := range keys {
		data = append(data, metricDatum(k, counts[k]))
	}

	for start := 0; start < len(data); start += maxDatumsPerCall {
		end := start + maxDatumsPerCall
		if end > len(data) {
			end = len(data)
		}
		_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(e.namespace),
			MetricData: data[start:end],
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func metricDatum(key models.InteractCountKey, value int) types.MetricDatum {
	action := string(key.ActionID)
	if action == "" {
		action = "none"
	}
	return types.MetricDatum{
		MetricName: aws.String("Interact" + string(key.Type)),
		Dimensions: []types.Dimension{
			{Name: aws.String("ActionID"), Value: aws.String(action)},
		},
		Unit:  types.StandardUnitCount,
		Value: aws.Float64(float64(value)),
	}
}
