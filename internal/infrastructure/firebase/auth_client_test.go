package firebase

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	uid string
	err error
}

func (f fakeVerifier) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &auth.Token{UID: f.uid}, nil
}

func TestVerifyToken(t *testing.T) {
	client := &FirebaseAuthClient{client: fakeVerifier{uid: "u1"}}
	uid, err := client.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)

	client = &FirebaseAuthClient{client: fakeVerifier{err: errors.New("expired")}}
	_, err = client.VerifyToken(context.Background(), "id-token")
	assert.Error(t, err)
}
