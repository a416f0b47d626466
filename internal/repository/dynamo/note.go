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
	"github.com/google/uuid"

	"github.com/quirknotes/server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

type noteItem struct {
	ID        string    `dynamodbav:"id"`
	Title     string    `dynamodbav:"title"`
	Content   string    `dynamodbav:"content"`
	Owner     string    `dynamodbav:"owner"`
	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

func (i noteItem) toModel() (model.Note, error) {
	id, err := uuid.Parse(i.ID)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to parse note id %q: %w", i.ID, err)
	}
	return model.Note{
		ID:        id,
		Title:     i.Title,
		Content:   i.Content,
		Owner:     i.Owner,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}, nil
}

// NoteRepository persists notes in a DynamoDB table keyed by note id, with a
// global secondary index on the owner attribute. Ownership is enforced here:
// every mutation carries an owner condition and every read compares the
// owner, so a mismatch surfaces as ErrNotFound.
type NoteRepository struct {
	client     API
	table      string
	ownerIndex string
}

func NewNoteRepository(client API, table, ownerIndex string) *NoteRepository {
	return &NoteRepository{
		client:     client,
		table:      table,
		ownerIndex: ownerIndex,
	}
}

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	item, err := attributevalue.MarshalMap(noteItem{
		ID:        note.ID.String(),
		Title:     note.Title,
		Content:   note.Content,
		Owner:     note.Owner,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	})
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to marshal note: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id uuid.UUID, owner string) (model.Note, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
	})
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}
	if len(out.Item) == 0 {
		return model.Note{}, model.ErrNotFound
	}

	var item noteItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return model.Note{}, fmt.Errorf("failed to unmarshal note: %w", err)
	}

	// Another user's note looks exactly like a missing one.
	if item.Owner != owner {
		return model.Note{}, model.ErrNotFound
	}

	return item.toModel()
}

func (r *NoteRepository) GetByOwner(ctx context.Context, owner string) ([]model.Note, error) {
	notes := []model.Note{}
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.table),
			IndexName:              aws.String(r.ownerIndex),
			KeyConditionExpression: aws.String("#owner = :owner"),
			ExpressionAttributeNames: map[string]string{
				"#owner": "owner",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner": &types.AttributeValueMemberS{Value: owner},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query notes by owner: %w", err)
		}

		for _, raw := range out.Items {
			var item noteItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				return nil, fmt.Errorf("failed to unmarshal note: %w", err)
			}
			note, err := item.toModel()
			if err != nil {
				return nil, err
			}
			notes = append(notes, note)
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, id uuid.UUID, owner string, update model.NoteUpdate) error {
	expr := "SET updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":owner":      &types.AttributeValueMemberS{Value: owner},
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().Format(time.RFC3339Nano)},
	}
	if update.Title != nil {
		expr += ", title = :title"
		values[":title"] = &types.AttributeValueMemberS{Value: *update.Title}
	}
	if update.Content != nil {
		expr += ", content = :content"
		values[":content"] = &types.AttributeValueMemberS{Value: *update.Content}
	}

	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
		UpdateExpression:    aws.String(expr),
		ConditionExpression: aws.String("attribute_exists(id) AND #owner = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#owner": "owner",
		},
		ExpressionAttributeValues: values,
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to update note: %w", err)
	}

	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID, owner string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
		ConditionExpression: aws.String("attribute_exists(id) AND #owner = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#owner": "owner",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: owner},
		},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
