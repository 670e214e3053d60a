package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDocumentsTableName = "documents"

type documentItem struct {
	Key     string `dynamodbav:"key"`
	Payload string `dynamodbav:"payload"`
}

// DynamoDocumentStore keeps each logical collection as a single item in one
// DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
//
// Every write is one PutItem replacing the whole payload, which is what gives
// the per-collection write its atomicity.

type DynamoDocumentStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ DocumentStore = (*DynamoDocumentStore)(nil)

func NewDynamoDocumentStore(ddb *dynamodb.Client) *DynamoDocumentStore {
	return &DynamoDocumentStore{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (s *DynamoDocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return []byte(it.Payload), true, nil
}

func (s *DynamoDocumentStore) Put(ctx context.Context, key string, payload []byte) error {
	av, err := attributevalue.MarshalMap(documentItem{Key: key, Payload: string(payload)})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *DynamoDocumentStore) Delete(ctx context.Context, key string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
