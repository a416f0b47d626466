package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/quirknotes/server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type userItem struct {
	Username     string    `dynamodbav:"username"`
	PasswordHash string    `dynamodbav:"password_hash"`
	CreatedAt    time.Time `dynamodbav:"created_at"`
}

// UserRepository persists users in a DynamoDB table keyed by username.
type UserRepository struct {
	client API
	table  string
}

func NewUserRepository(client API, table string) *UserRepository {
	return &UserRepository{
		client: client,
		table:  table,
	}
}

// Create inserts a user. The conditional write makes the username unique at
// the storage layer, so two concurrent registrations cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	item, err := attributevalue.MarshalMap(userItem{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to marshal user: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(username)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return model.User{}, model.ErrUsernameTaken
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	if len(out.Item) == 0 {
		return model.User{}, model.ErrNotFound
	}

	var item userItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return model.User{}, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return model.User{
		Username:     item.Username,
		PasswordHash: item.PasswordHash,
		CreatedAt:    item.CreatedAt,
	}, nil
}
