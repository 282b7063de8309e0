package report

import (
	"context"
	"fmt"

	pkgLog "notification-enricher/pkg/log"
	pkgMinio "notification-enricher/pkg/minio"
)

// minioArtifactStore counts generated report artifacts in object storage.
// Artifacts are written by the report runner under
// artifacts/<accountID>/<scheduleID>/.
type minioArtifactStore struct {
	l      pkgLog.Logger
	client pkgMinio.Client
	bucket string
}

var _ ArtifactStore = &minioArtifactStore{}

// NewArtifactStore creates the object-storage-backed artifact store.
func NewArtifactStore(l pkgLog.Logger, client pkgMinio.Client, bucket string) *minioArtifactStore {
	return &minioArtifactStore{
		l:      l,
		client: client,
		bucket: bucket,
	}
}

func (s *minioArtifactStore) Count(ctx context.Context, accountID, scheduleID string) (int, error) {
	prefix := fmt.Sprintf("artifacts/%s/%s/", accountID, scheduleID)

	count, err := s.client.CountObjects(ctx, s.bucket, prefix)
	if err != nil {
		s.l.Errorf(ctx, "internal.report.artifact.Count: %v", err)
		return 0, err
	}
	return count, nil
}
