package history

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"newspulse/common"
	"newspulse/types"
)

// S3Store persists one JSON object per day at <prefix>/snapshots/<date>.json.
// Writing a day twice overwrites that day's object, giving upsert-by-date
// semantics at the persistence layer.
type S3Store struct {
	s3     *common.S3
	bucket string
	prefix string
}

// NewS3Store creates a snapshot store over the given bucket. prefix may be
// empty.
func NewS3Store(s3 *common.S3, bucket, prefix string) *S3Store {
	return &S3Store{s3: s3, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (s *S3Store) key(date string) string {
	return path.Join(s.prefix, "snapshots", date+".json")
}

func (s *S3Store) Put(ctx context.Context, date string, rows []types.DailySnapshot) error {
	b, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	if err := s.s3.Put(ctx, s.bucket, s.key(date), bytes.NewReader(b), "application/json"); err != nil {
		return fmt.Errorf("failed to write snapshot for %s: %w", date, err)
	}
	return nil
}

func (s *S3Store) Range(ctx context.Context, from, to string) ([]types.DailySnapshot, error) {
	prefix := path.Join(s.prefix, "snapshots") + "/"
	keys, err := s.s3.List(ctx, s.bucket, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var out []types.DailySnapshot
	for _, key := range keys {
		date := strings.TrimSuffix(strings.TrimPrefix(key, prefix), ".json")
		if date < from || date > to {
			continue
		}

		body, err := s.s3.Get(ctx, s.bucket, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
		}
		raw, err := io.ReadAll(body)
		body.Close()
		if err != nil {
			return nil, err
		}

		var rows []types.DailySnapshot
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("corrupt snapshot %s: %w", key, err)
		}
		out = append(out, rows...)
	}
	return out, nil
}
