// Package media реализует клиент S3-совместимого медиахранилища.
// Загруженный файл получает ключ-uuid внутри настроенного бакета,
// наружу возвращается публичный URL. Удаление выполняется по идентификатору,
// который выводится из URL: последний сегмент пути без расширения.
package media

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/user-account-service/internal/config"
)

// Store описывает интерфейс внешнего медиахранилища: загрузить блоб и получить
// URL, удалить блоб по идентификатору.
type Store interface {
	Upload(ctx context.Context, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, mediaID string) error
}

// S3Store реализует Store поверх S3-совместимого хранилища (MinIO и т.п.).
type S3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Store создает клиент медиахранилища со статическими учётными данными
// и переопределённым базовым эндпоинтом.
func NewS3Store(ctx context.Context, cfg config.MediaStore) (*S3Store, error) {
	const op = "media.NewS3Store"

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &S3Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload сохраняет содержимое r под новым ключом-uuid и возвращает публичный URL файла.
func (s *S3Store) Upload(ctx context.Context, r io.Reader, size int64, contentType string) (string, error) {
	const op = "media.Upload"

	key := uuid.New().String()
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, key), nil
}

// Delete удаляет файл по его идентификатору.
func (s *S3Store) Delete(ctx context.Context, mediaID string) error {
	const op = "media.Delete"

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(mediaID),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// MediaID возвращает идентификатор файла из его публичного URL:
// последний сегмент пути с отрезанным расширением.
func MediaID(rawURL string) string {
	segment := rawURL
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	if i := strings.LastIndex(segment, "."); i >= 0 {
		segment = segment[:i]
	}
	return segment
}
