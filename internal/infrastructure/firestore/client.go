package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreClient 旅行プランの一時保存に使うFirestore接続のラッパー
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient はFirestoreクライアントを初期化する
// Cloud Run上ではデフォルト認証を、ローカルでは認証ファイルを使う
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	if projectID == "" {
		return nil, fmt.Errorf("FirestoreのプロジェクトIDが指定されていません")
	}

	// Cloud Run環境の検出
	if os.Getenv("K_SERVICE") != "" {
		client, err := firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("Firestoreクライアントの初期化に失敗 (デフォルト認証): %w", err)
		}
		log.Printf("☁️ Firestore初期化完了 (プロジェクト: %s, Cloud Runデフォルト認証)", projectID)
		return &FirestoreClient{client: client}, nil
	}

	// ローカル環境では認証ファイルを探す
	credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsFile == "" {
		credentialsFile = "lakbay-firestore-key.json"
	}

	var client *firestore.Client
	var err error
	if _, statErr := os.Stat(credentialsFile); statErr != nil {
		log.Printf("⚠️ 認証ファイルが見つかりません (%s)、デフォルト認証を試行", credentialsFile)
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	}
	if err != nil {
		return nil, fmt.Errorf("Firestoreクライアントの初期化に失敗: %w", err)
	}

	log.Printf("✅ Firestore初期化完了 (プロジェクト: %s)", projectID)
	return &FirestoreClient{client: client}, nil
}

// Close は接続を閉じる
func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

// GetClient は内部のFirestoreクライアントを取得する
func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
