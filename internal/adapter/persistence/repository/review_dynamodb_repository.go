package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReviewsTableName = "reviews"
	reviewsSourceIndex      = "source-index"

	// DynamoDB limits per TransactWriteItems / BatchWriteItem call.
	maxTransactItems    = 100
	maxBatchWriteItems  = 25
	maxBatchWriteRounds = 5
)

type reviewItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Rating      int     `dynamodbav:"rating"`
	Text        string  `dynamodbav:"text"`
	Source      string  `dynamodbav:"source"`
	IsPublished bool    `dynamodbav:"is_published"`
	IsFeatured  bool    `dynamodbav:"is_featured"`
	PublishedAt string  `dynamodbav:"published_at,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	AdminNotes  *string `dynamodbav:"admin_notes,omitempty"`
}

// ReviewDynamoRepository persists Review entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: source-index (PK: source)
//
// CreateMany writes through TransactWriteItems, so each chunk of up to 100
// reviews is committed atomically.

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, review entities.Review) (entities.Review, error) {
	av, err := attributevalue.MarshalMap(toReviewItem(review))
	if err != nil {
		return entities.Review{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Review{}, err
	}
	return review, nil
}

func (r *ReviewDynamoRepository) CreateMany(ctx context.Context, reviews []entities.Review) error {
	for start := 0; start < len(reviews); start += maxTransactItems {
		end := min(start+maxTransactItems, len(reviews))

		items := make([]types.TransactWriteItem, 0, end-start)
		for _, review := range reviews[start:end] {
			av, err := attributevalue.MarshalMap(toReviewItem(review))
			if err != nil {
				return err
			}
			items = append(items, types.TransactWriteItem{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			})
		}

		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
			return fmt.Errorf("insert reviews %d..%d: %w", start, end, err)
		}
	}
	return nil
}

func (r *ReviewDynamoRepository) GetByID(ctx context.Context, id string) (entities.Review, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Review{}, err
	}
	if len(out.Item) == 0 {
		return entities.Review{}, nil
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) List(ctx context.Context) ([]entities.Review, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var reviews []entities.Review
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		batch, err := unmarshalReviews(page.Items)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, batch...)
	}
	return reviews, nil
}

func (r *ReviewDynamoRepository) ListBySource(ctx context.Context, source entities.ReviewSource) ([]entities.Review, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reviewsSourceIndex),
		KeyConditionExpression: aws.String("#source = :source"),
		ExpressionAttributeNames: map[string]string{
			"#source": "source",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":source": &types.AttributeValueMemberS{Value: string(source)},
		},
	})

	var reviews []entities.Review
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		batch, err := unmarshalReviews(page.Items)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, batch...)
	}
	return reviews, nil
}

func (r *ReviewDynamoRepository) Update(ctx context.Context, review entities.Review) (entities.Review, error) {
	av, err := attributevalue.MarshalMap(toReviewItem(review))
	if err != nil {
		return entities.Review{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Review{}, nil
		}
		return entities.Review{}, err
	}
	return review, nil
}

func (r *ReviewDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// DeleteAll scans the key of every review and removes them in batches.
func (r *ReviewDynamoRepository) DeleteAll(ctx context.Context) (int, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("#id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})

	var keys []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		keys = append(keys, page.Items...)
	}

	for start := 0; start < len(keys); start += maxBatchWriteItems {
		end := min(start+maxBatchWriteItems, len(keys))

		requests := make([]types.WriteRequest, 0, end-start)
		for _, key := range keys[start:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: key},
			})
		}
		if err := r.batchWrite(ctx, requests); err != nil {
			return start, err
		}
	}
	return len(keys), nil
}

// batchWrite resubmits unprocessed items, which DynamoDB returns under
// throttling, a bounded number of times.
func (r *ReviewDynamoRepository) batchWrite(ctx context.Context, requests []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: requests}
	for round := 0; round < maxBatchWriteRounds && len(pending[r.tableName]) > 0; round++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems
	}
	if left := len(pending[r.tableName]); left > 0 {
		return fmt.Errorf("batch write: %d items left unprocessed", left)
	}
	return nil
}

func unmarshalReviews(items []map[string]types.AttributeValue) ([]entities.Review, error) {
	out := make([]entities.Review, 0, len(items))
	for _, raw := range items {
		var it reviewItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromReviewItem(it))
	}
	return out, nil
}

func toReviewItem(r entities.Review) reviewItem {
	it := reviewItem{
		ID:          r.ID,
		Name:        r.Name,
		Rating:      r.Rating,
		Text:        r.Text,
		Source:      string(r.Source),
		IsPublished: r.IsPublished,
		IsFeatured:  r.IsFeatured,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339Nano),
		AdminNotes:  r.AdminNotes,
	}
	if r.PublishedAt != nil {
		it.PublishedAt = r.PublishedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromReviewItem(it reviewItem) entities.Review {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	r := entities.Review{
		ID:          it.ID,
		Name:        it.Name,
		Rating:      it.Rating,
		Text:        it.Text,
		Source:      entities.ReviewSource(it.Source),
		IsPublished: it.IsPublished,
		IsFeatured:  it.IsFeatured,
		CreatedAt:   createdAt,
		AdminNotes:  it.AdminNotes,
	}
	if it.PublishedAt != "" {
		if publishedAt, err := time.Parse(time.RFC3339Nano, it.PublishedAt); err == nil {
			r.PublishedAt = &publishedAt
		}
	}
	return r
}
