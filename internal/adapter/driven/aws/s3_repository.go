package aws

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutReport envia um relatório exportado para o bucket S3.
func (r *AWSRepositoryImpl) PutReport(ctx context.Context, bucket, key string, body io.Reader) (string, error) {
	client, err := r.getServiceClient(ctx, serviceS3)
	if err != nil {
		return "", err
	}
	s3Client := client.(S3API)

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType := mime.TypeByExtension(path.Ext(key)); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s3Client.PutObject(ctx, input); err != nil {
		return "", wrapAPIError(fmt.Sprintf("error uploading %s to bucket %s", key, bucket), err)
	}
	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}
