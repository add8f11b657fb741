package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
)

// Publish sends the alert to the SNS topic.
func (r *AWSRepositoryImpl) Publish(ctx context.Context, topic string, message entity.AlertMessage) (string, error) {
	client, err := r.getServiceClient(ctx, serviceSNS)
	if err != nil {
		return "", err
	}
	snsClient := client.(SNSAPI)

	output, err := snsClient.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(topic),
		Subject:  aws.String(message.Subject),
		Message:  aws.String(message.Body),
	})
	if err != nil {
		return "", wrapAPIError("error publishing to topic "+topic, err)
	}
	return aws.ToString(output.MessageId), nil
}
