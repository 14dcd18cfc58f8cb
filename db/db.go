// Package db mirrors written progression files into a DynamoDB table so they
// can be restored on another machine.
package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

var ErrNotFound = errors.New("progression not found in archive")

type Archive struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func New(client dynamodbiface.DynamoDBAPI, table string) *Archive {
	return &Archive{client: client, table: table}
}

// NewClient builds a DynamoDB client; an empty endpoint uses the AWS default
// for the region.
func NewClient(region string, endpoint string) (*dynamodb.DynamoDB, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create DynamoDB session: %w", err)
	}
	return dynamodb.New(sess), nil
}

func (a *Archive) Table() string {
	return a.table
}

// Put stores the encoded progression under its name, replacing any previous
// version.
func (a *Archive) Put(ctx context.Context, name string, count int, body string) error {
	_, err := a.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(a.table),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":    {S: aws.String(name)},
			"Count": {N: aws.String(strconv.Itoa(count))},
			"Body":  {S: aws.String(body)},
		},
	})
	if err != nil {
		return fmt.Errorf("could not archive progression %q: %w", name, err)
	}
	return nil
}

func (a *Archive) Get(ctx context.Context, name string) (string, error) {
	out, err := a.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(a.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(name)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("could not fetch progression %q: %w", name, err)
	}
	if len(out.Item) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	body := out.Item["Body"]
	if body == nil || body.S == nil {
		return "", fmt.Errorf("archived progression %q has no body", name)
	}
	return *body.S, nil
}
