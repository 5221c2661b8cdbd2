package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"hushhnotify/pkg/config"
)

// Clients groups the managed collaborators every entry point depends on.
type Clients struct {
	Firestore *firestore.Client
	Database  *db.Client
	Messaging *messaging.Client
	Auth      *auth.Client
}

// NewClients initializes the Firebase app once and hands out explicit
// clients so nothing downstream reaches for a process-wide singleton.
func NewClients(ctx context.Context, cfg *config.Config, opt option.ClientOption) (*Clients, error) {
	app, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:   cfg.FirebaseProject,
		DatabaseURL: cfg.DatabaseURL,
	}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase: %w", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	databaseClient, err := app.Database(ctx)
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to initialize Realtime Database: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to initialize Cloud Messaging: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to initialize Firebase Auth: %w", err)
	}

	return &Clients{
		Firestore: firestoreClient,
		Database:  databaseClient,
		Messaging: messagingClient,
		Auth:      authClient,
	}, nil
}

// NewFirestoreOnly is enough for the seed command.
func NewFirestoreOnly(ctx context.Context, cfg *config.Config, opt option.ClientOption) (*firestore.Client, error) {
	client, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return client, nil
}

func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
