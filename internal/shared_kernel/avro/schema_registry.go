package avro

import (
	"github.com/riferrei/srclient"
)

// SchemaRegistry defines the interface for schema registry operations
type SchemaRegistry interface {
	GetLatestSchema(subject string) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	GetSchema(schemaID int) (*srclient.Schema, error)
}

var _ SchemaRegistry = (*srclient.SchemaRegistryClient)(nil)

// NewSchemaRegistryClient creates a schema registry client for the given base URL
func NewSchemaRegistryClient(baseURL string) SchemaRegistry {
	return srclient.CreateSchemaRegistryClient(baseURL)
}
