package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/muslimtime-api/internal/domain"
	"github.com/muslimtime-api/internal/pkg/docid"
)

// VerificationRepo persists durable email-verification flags in the
// user_verifications table, keyed by the sanitized email document id.
type VerificationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewVerificationRepo(client *dynamodb.Client, tableName string) *VerificationRepo {
	return &VerificationRepo{client: client, tableName: tableName}
}

// Put writes the flag unconditionally, replacing any existing flag for the email.
func (r *VerificationRepo) Put(ctx context.Context, flag *domain.VerificationFlag) error {
	flag.VerificationID = docid.Verification(flag.Email)
	item, err := attributevalue.MarshalMap(flag)
	if err != nil {
		return fmt.Errorf("marshal verification flag: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *VerificationRepo) Get(ctx context.Context, email string) (*domain.VerificationFlag, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("verification_id", docid.Verification(email)),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("verification flag not found: %w", domain.ErrNotFound)
	}
	var flag domain.VerificationFlag
	if err := attributevalue.UnmarshalMap(out.Item, &flag); err != nil {
		return nil, err
	}
	return &flag, nil
}
