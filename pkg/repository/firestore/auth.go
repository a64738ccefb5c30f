package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/complypilot/complypilot/pkg/domain/model/auth"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

const tokensCollection = "tokens"

func (f *Firestore) tokensCollection() string {
	if f.tokenPrefix != "" {
		return f.tokenPrefix + "_" + tokensCollection
	}
	return tokensCollection
}

func (f *Firestore) PutToken(ctx context.Context, token *auth.Token) error {
	if err := token.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token")
	}

	docRef := f.client.Collection(f.tokensCollection()).Doc(token.ID.String())
	if _, err := docRef.Set(ctx, token); err != nil {
		return goerr.Wrap(err, "failed to put token to firestore")
	}

	return nil
}

func (f *Firestore) GetToken(ctx context.Context, tokenID auth.TokenID) (*auth.Token, error) {
	if err := tokenID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid token ID")
	}

	docRef := f.client.Collection(f.tokensCollection()).Doc(tokenID.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "token not found", goerr.V("token_id", tokenID))
		}
		return nil, goerr.Wrap(err, "failed to get token from firestore")
	}

	var token auth.Token
	if err := doc.DataTo(&token); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal token")
	}

	return &token, nil
}

func (f *Firestore) DeleteToken(ctx context.Context, tokenID auth.TokenID) error {
	if err := tokenID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token ID")
	}

	docRef := f.client.Collection(f.tokensCollection()).Doc(tokenID.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "token not found", goerr.V("token_id", tokenID))
		}
		return goerr.Wrap(err, "failed to get token from firestore")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete token from firestore")
	}

	return nil
}

// DeleteUserTokens removes the user's tokens that expired before now and
// reports how many were removed. Requires the composite sub+expires_at index
// installed by the migrate command.
func (f *Firestore) DeleteUserTokens(ctx context.Context, userID types.UserID, now time.Time) (int, error) {
	if err := userID.Validate(); err != nil {
		return 0, goerr.Wrap(err, "invalid user ID")
	}

	iter := f.client.Collection(f.tokensCollection()).
		Where("sub", "==", userID.String()).
		Where("expires_at", "<", now).
		Documents(ctx)
	defer iter.Stop()

	return f.deleteTokenDocs(ctx, iter)
}

// DeleteExpiredTokens removes every token whose expiry is before now and
// reports how many were removed.
func (f *Firestore) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	iter := f.client.Collection(f.tokensCollection()).
		Where("expires_at", "<", now).
		Documents(ctx)
	defer iter.Stop()

	return f.deleteTokenDocs(ctx, iter)
}

// deleteTokenDocs drains the iterator deleting each document. Deletes go
// through a BulkWriter so sweeps over large collections stay within batch
// limits.
func (f *Firestore) deleteTokenDocs(ctx context.Context, iter *firestore.DocumentIterator) (int, error) {
	bulkWriter := f.client.BulkWriter(ctx)
	defer bulkWriter.End()

	deleted := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, goerr.Wrap(err, "failed to iterate expired tokens")
		}

		if _, err := bulkWriter.Delete(doc.Ref); err != nil {
			return 0, goerr.Wrap(err, "failed to add Delete operation to bulk writer", goerr.V("docID", doc.Ref.ID))
		}
		deleted++
	}

	bulkWriter.Flush()

	return deleted, nil
}
