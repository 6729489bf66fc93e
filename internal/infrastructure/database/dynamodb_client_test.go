package database

import (
	"context"
	"errors"
	"testing"

	appconfig "controle_abastecimento/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTables struct {
	existing map[string]bool
	created  []string
	err      error
}

func (f *fakeTables) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.existing[aws.ToString(in.TableName)] {
		return &dynamodb.DescribeTableOutput{}, nil
	}
	return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if aws.ToString(in.KeySchema[0].AttributeName) != "id" || in.BillingMode != types.BillingModePayPerRequest {
		return nil, errors.New("unexpected table definition")
	}
	f.created = append(f.created, aws.ToString(in.TableName))
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables(t *testing.T) {
	t.Run("creates only missing tables", func(t *testing.T) {
		api := &fakeTables{existing: map[string]bool{"vehicles": true}}
		if err := EnsureTables(context.Background(), api, "responsibles", "vehicles", "fuel_records"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(api.created) != 2 || api.created[0] != "responsibles" || api.created[1] != "fuel_records" {
			t.Fatalf("unexpected created tables: %v", api.created)
		}
	})

	t.Run("describe failure", func(t *testing.T) {
		api := &fakeTables{err: errors.New("unreachable")}
		if err := EnsureTables(context.Background(), api, "responsibles"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestNewDynamoDBConfig(t *testing.T) {
	cfg := &appconfig.Config{
		AWSRegion:          "sa-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		DynamoDBEndpoint:   "http://localhost:8000",
	}
	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "sa-east-1" {
		t.Fatalf("unexpected region: %s", awsCfg.Region)
	}
	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("unexpected credentials: %+v err=%v", creds, err)
	}
}
