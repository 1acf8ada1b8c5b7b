package avro

import (
	"fmt"
	"reflect"

	"github.com/hamba/avro/v2"
)

// AvroCodec implements Codec interface using static Avro schemas
type AvroCodec struct {
	prototype any
	schemas   map[string]avro.Schema
}

// Static Avro schemas for all message types
const (
	// FieldDefinition schema
	fieldDefinitionSchema = `{
		"type": "record",
		"name": "FieldDefinition",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "entity_type", "type": "string"},
			{"name": "entity_id", "type": "string"},
			{"name": "field_name", "type": "string"},
			{"name": "field_type", "type": "string"},
			{"name": "field_options", "type": "string"},
			{"name": "is_required", "type": "boolean"},
			{"name": "tab_id", "type": ["null", "string"]},
			{"name": "display_order", "type": "int"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	// FieldTab schema
	fieldTabSchema = `{
		"type": "record",
		"name": "FieldTab",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "entity_type", "type": "string"},
			{"name": "entity_id", "type": "string"},
			{"name": "tab_name", "type": "string"},
			{"name": "display_order", "type": "int"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	// FieldValue schema
	fieldValueSchema = `{
		"type": "record",
		"name": "FieldValue",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "custom_field_id", "type": "string"},
			{"name": "entity_instance_id", "type": "string"},
			{"name": "field_value", "type": "string"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`
)

// NewAvroCodec creates a codec that encodes and decodes messages of the
// prototype's type using the static schemas above
func NewAvroCodec(prototype any) *AvroCodec {
	schemas := make(map[string]avro.Schema)

	fieldDefinitionAvroSchema, _ := avro.Parse(fieldDefinitionSchema)
	fieldTabAvroSchema, _ := avro.Parse(fieldTabSchema)
	fieldValueAvroSchema, _ := avro.Parse(fieldValueSchema)

	schemas["FieldDefinition"] = fieldDefinitionAvroSchema
	schemas["FieldTab"] = fieldTabAvroSchema
	schemas["FieldValue"] = fieldValueAvroSchema

	return &AvroCodec{
		prototype: prototype,
		schemas:   schemas,
	}
}

// schemaNameForType maps a message type name to its schema key
func schemaNameForType(typeName string) (string, error) {
	switch typeName {
	case "FieldDefinition", "AvroFieldDefinition":
		return "FieldDefinition", nil
	case "FieldTab", "AvroFieldTab":
		return "FieldTab", nil
	case "FieldValue", "AvroFieldValue":
		return "FieldValue", nil
	default:
		return "", fmt.Errorf("no Avro schema found for message type: %s", typeName)
	}
}

// getSchemaForMessage returns the appropriate Avro schema for the given message
func (c *AvroCodec) getSchemaForMessage(message any) (avro.Schema, error) {
	messageType := reflect.TypeOf(message)
	if messageType.Kind() == reflect.Ptr {
		messageType = messageType.Elem()
	}

	schemaName, err := schemaNameForType(messageType.Name())
	if err != nil {
		return nil, err
	}

	schema, exists := c.schemas[schemaName]
	if !exists {
		return nil, fmt.Errorf("no Avro schema found for message type: %s", schemaName)
	}

	return schema, nil
}

// Encode encodes a value into Avro format
func (c *AvroCodec) Encode(value any) ([]byte, error) {
	schema, err := c.getSchemaForMessage(value)
	if err != nil {
		return nil, fmt.Errorf("getting schema: %w", err)
	}

	data, err := avro.Marshal(schema, value)
	if err != nil {
		return nil, fmt.Errorf("marshaling to Avro: %w", err)
	}

	return data, nil
}

// Decode decodes an Avro message back into a new instance of the prototype type
func (c *AvroCodec) Decode(data []byte) (any, error) {
	prototypeType := reflect.TypeOf(c.prototype)
	if prototypeType.Kind() == reflect.Ptr {
		prototypeType = prototypeType.Elem()
	}

	schemaName, err := schemaNameForType(prototypeType.Name())
	if err != nil {
		return nil, fmt.Errorf("getting schema for prototype: %w", err)
	}

	schema, exists := c.schemas[schemaName]
	if !exists {
		return nil, fmt.Errorf("no Avro schema found for prototype type: %s", schemaName)
	}

	instance := reflect.New(prototypeType).Interface()

	err = avro.Unmarshal(schema, data, instance)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling from Avro: %w", err)
	}

	return instance, nil
}
