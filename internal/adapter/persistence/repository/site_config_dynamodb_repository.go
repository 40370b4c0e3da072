package repository

import (
	"context"
	"encoding/json"
	"time"

	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSiteConfigTableName = "site_config"

	pricingDocumentID     = "pricing"
	siteContentDocumentID = "site_content"
)

type documentItem struct {
	ID        string `dynamodbav:"id"`
	Document  string `dynamodbav:"document"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// documentTable keeps whole JSON documents in one DynamoDB table, one item
// per document.
//
// Table requirements:
//   - PK: id (string)

type documentTable struct {
	ddb       *dynamodb.Client
	tableName string
}

func newDocumentTable(ddb *dynamodb.Client) documentTable {
	return documentTable{
		ddb:       ddb,
		tableName: getenvDefault("SITE_CONFIG_TABLE", defaultSiteConfigTableName),
	}
}

// get decodes the document into dst. It reports false when the item does not exist.
func (t documentTable) get(ctx context.Context, id string, dst any) (bool, error) {
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(it.Document), dst); err != nil {
		return false, err
	}
	return true, nil
}

func (t documentTable) put(ctx context.Context, id string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(documentItem{
		ID:        id,
		Document:  string(doc),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item:      av,
	})
	return err
}

// PricingConfigDynamoRepository stores the calculator pricing document.

type PricingConfigDynamoRepository struct {
	table documentTable
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigDynamoRepository)(nil)

func NewPricingConfigDynamoRepository(ddb *dynamodb.Client) *PricingConfigDynamoRepository {
	return &PricingConfigDynamoRepository{table: newDocumentTable(ddb)}
}

func (r *PricingConfigDynamoRepository) Load(ctx context.Context) (entities.PricingConfig, error) {
	var cfg entities.PricingConfig
	found, err := r.table.get(ctx, pricingDocumentID, &cfg)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if !found {
		return entities.DefaultPricingConfig(), nil
	}
	return normalizePricingConfig(cfg), nil
}

func (r *PricingConfigDynamoRepository) Save(ctx context.Context, cfg entities.PricingConfig) error {
	return r.table.put(ctx, pricingDocumentID, cfg)
}

// SiteContentDynamoRepository stores the editable site copy.

type SiteContentDynamoRepository struct {
	table documentTable
}

var _ interfaces.ISiteContentRepository = (*SiteContentDynamoRepository)(nil)

func NewSiteContentDynamoRepository(ddb *dynamodb.Client) *SiteContentDynamoRepository {
	return &SiteContentDynamoRepository{table: newDocumentTable(ddb)}
}

func (r *SiteContentDynamoRepository) Load(ctx context.Context) (entities.SiteContent, error) {
	var content entities.SiteContent
	found, err := r.table.get(ctx, siteContentDocumentID, &content)
	if err != nil {
		return entities.SiteContent{}, err
	}
	if !found {
		return entities.DefaultSiteContent(), nil
	}
	return content, nil
}

func (r *SiteContentDynamoRepository) Save(ctx context.Context, content entities.SiteContent) error {
	return r.table.put(ctx, siteContentDocumentID, content)
}
