// Package firestore implements the repositories on Cloud Firestore. Subscriptions are
// backed by query snapshot listeners, so every push carries the full result set.
package firestore

import (
	"context"
	"log/slog"

	firebaseapp "canteen/internal/infra/firebase"
	"canteen/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewClient opens a Firestore client through the shared Firebase app.
func NewClient(ctx context.Context, apps *firebaseapp.AppProvider) (*firestore.Client, error) {
	app, err := apps.App()
	if err != nil {
		return nil, err
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Firestore client")
	}

	return client, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// dataSource is the part of a document snapshot decode needs.
type dataSource interface {
	DataTo(p any) error
}

// decode converts one document. A document that does not fit D is logged and skipped.
func decode[D any, E any](logger *slog.Logger, id string, src dataSource, convert func(id string, doc *D) *E) (*E, bool) {
	var doc D
	if err := src.DataTo(&doc); err != nil {
		logger.Warn("Skipping undecodable document",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)

		return nil, false
	}

	return convert(id, &doc), true
}

// readAll decodes every document of a query.
func readAll[D any, E any](ctx context.Context, logger *slog.Logger, q firestore.Query, convert func(id string, doc *D) *E) ([]*E, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*E
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if e, ok := decode(logger, snap.Ref.ID, snap, convert); ok {
			out = append(out, e)
		}
	}

	return out, nil
}

// listen calls onSnapshot with the full result set of q on every change until ctx is done.
func listen[D any, E any](ctx context.Context, logger *slog.Logger, q firestore.Query, convert func(id string, doc *D) *E, onSnapshot func([]*E)) error {
	iter := q.Snapshots(ctx)
	defer iter.Stop()

	for {
		qs, err := iter.Next()
		if err != nil {
			if ctx.Err() != nil || status.Code(err) == codes.Canceled {
				return nil
			}

			return errors.Wrap(err, "snapshot listener failed")
		}

		docs, err := qs.Documents.GetAll()
		if err != nil {
			return errors.WithStack(err)
		}

		out := make([]*E, 0, len(docs))
		for _, snap := range docs {
			if e, ok := decode(logger, snap.Ref.ID, snap, convert); ok {
				out = append(out, e)
			}
		}
		onSnapshot(out)
	}
}
