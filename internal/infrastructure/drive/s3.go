package drive

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"file-relay/internal/domain/entities"
	"file-relay/pkg/errors"
	"file-relay/pkg/file"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Drive maps the drive tree onto a bucket. Folders are zero-byte keys
// ending in "/".
type S3Drive struct {
	client     *s3.Client
	bucketName string
	region     string
	accessKey  string
	secretKey  string
	endpoint   string
}

func NewS3Drive(bucketName, region, accessKey, secretKey, endpoint string) *S3Drive {
	return &S3Drive{
		bucketName: bucketName,
		region:     region,
		accessKey:  accessKey,
		secretKey:  secretKey,
		endpoint:   endpoint,
	}
}

func (d *S3Drive) Name() string { return "s3" }

func (d *S3Drive) Connect(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(d.region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(d.accessKey, d.secretKey, "")),
	)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if d.endpoint != "" {
			o.BaseEndpoint = aws.String(d.endpoint)
			o.UsePathStyle = true
		}
	})
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(d.bucketName)}); err != nil {
		return fmt.Errorf("bucket %s: %w", d.bucketName, err)
	}
	d.client = client
	return nil
}

func (d *S3Drive) Close() error {
	d.client = nil
	return nil
}

func objectKey(remotePath string) string {
	return strings.Join(file.SplitPath(remotePath), "/")
}

func folderKey(folder string) string {
	key := objectKey(folder)
	if key == "" {
		return ""
	}
	return key + "/"
}

func (d *S3Drive) List(ctx context.Context, folder string) ([]entities.DriveEntry, error) {
	prefix := folderKey(folder)
	paginator := s3.NewListObjectsV2Paginator(d.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(d.bucketName),
		Prefix: aws.String(prefix),
	})

	var entries []entities.DriveEntry
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list %s: %w", folder, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if key == prefix {
				continue
			}
			entries = append(entries, objectEntry(key, aws.ToInt64(obj.Size), aws.ToTime(obj.LastModified)))
		}
	}
	return entries, nil
}

func objectEntry(key string, size int64, modified time.Time) entities.DriveEntry {
	entry := entities.DriveEntry{
		Name:       path.Base(strings.TrimSuffix(key, "/")),
		Path:       file.JoinPath(key),
		Type:       entities.EntryFile,
		Size:       size,
		Timestamp:  modified,
		DownloadID: key,
	}
	if strings.HasSuffix(key, "/") {
		entry.Type = entities.EntryFolder
		entry.Size = 0
	}
	return entry
}

func (d *S3Drive) Upload(ctx context.Context, localPath, remotePath string) (*entities.DriveEntry, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, errors.ErrNotFound(localPath)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	key := objectKey(remotePath)
	_, err = d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(d.bucketName),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 upload %s: %w", key, err)
	}
	entry := objectEntry(key, info.Size(), time.Now())
	return &entry, nil
}

func (d *S3Drive) Download(ctx context.Context, remotePath, localPath string) error {
	key := objectKey(remotePath)
	resp, err := d.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return d.notFound(err, remotePath)
	}
	defer resp.Body.Close()

	if dir := filepath.Dir(localPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := os.Create(localPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(localPath)
		return fmt.Errorf("s3 download %s: %w", key, err)
	}
	return out.Close()
}

func (d *S3Drive) Delete(ctx context.Context, remotePath string) (bool, error) {
	entry, err := d.Info(ctx, remotePath)
	if err != nil {
		return false, err
	}
	_, err = d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(d.bucketName),
		Key:    aws.String(entry.DownloadID),
	})
	return false, err
}

// Mkdir writes a marker key for the folder and each missing parent.
func (d *S3Drive) Mkdir(ctx context.Context, folderPath string) error {
	parts := file.SplitPath(folderPath)
	for i := range parts {
		key := strings.Join(parts[:i+1], "/") + "/"
		_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(d.bucketName),
			Key:    aws.String(key),
			Body:   strings.NewReader(""),
		})
		if err != nil {
			return fmt.Errorf("s3 mkdir %s: %w", key, err)
		}
	}
	return nil
}

// Info resolves remotePath as an object first and as a folder marker second.
func (d *S3Drive) Info(ctx context.Context, remotePath string) (*entities.DriveEntry, error) {
	for _, key := range []string{objectKey(remotePath), folderKey(remotePath)} {
		if key == "" {
			continue
		}
		head, err := d.client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(d.bucketName),
			Key:    aws.String(key),
		})
		if err != nil {
			if isMissing(err) {
				continue
			}
			return nil, err
		}
		entry := objectEntry(key, aws.ToInt64(head.ContentLength), aws.ToTime(head.LastModified))
		return &entry, nil
	}
	return nil, errors.ErrNotFound(remotePath)
}

func (d *S3Drive) notFound(err error, remotePath string) error {
	if isMissing(err) {
		return errors.ErrNotFound(remotePath)
	}
	return err
}

func isMissing(err error) bool {
	var nsk *types.NoSuchKey
	var nf *types.NotFound
	return stderrors.As(err, &nsk) || stderrors.As(err, &nf)
}
