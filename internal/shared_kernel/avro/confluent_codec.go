package avro

import (
	"context"
	"encoding/binary"
	"fmt"
	"reflect"
	"time"

	"memberhub-server/internal/infra/cache"

	"github.com/linkedin/goavro/v2"
	"github.com/riferrei/srclient"
)

const (
	_defaultSchemaCacheTTL = 5 * time.Minute
	_defaultCodecCacheTTL  = 5 * time.Minute
)

// ConfluentAvroCodec implements Codec interface using Confluent Avro wire format and Schema Registry
type ConfluentAvroCodec struct {
	prototype      any
	schemaRegistry SchemaRegistry
	subjectSuffix  string
	schemaCache    cache.Cache
	codecCache     cache.Cache
}

// NewConfluentAvroCodec creates a new Confluent Avro codec with schema registry
func NewConfluentAvroCodec(prototype any, schemaRegistry SchemaRegistry) *ConfluentAvroCodec {
	schemaCache, _ := cache.New(&cache.CacheConfig{
		MaxCost:     1 << 20, // 1MB
		NumCounters: 1e6,
		BufferItems: 64,
	})

	codecCache, _ := cache.New(&cache.CacheConfig{
		MaxCost:     1 << 20, // 1MB
		NumCounters: 1e6,
		BufferItems: 64,
	})

	return &ConfluentAvroCodec{
		prototype:      prototype,
		schemaRegistry: schemaRegistry,
		subjectSuffix:  "-value",
		schemaCache:    schemaCache,
		codecCache:     codecCache,
	}
}

// getSchemaForMessage returns the registry subject name for the given message
func (c *ConfluentAvroCodec) getSchemaForMessage(message any) (string, error) {
	messageType := reflect.TypeOf(message)
	if messageType.Kind() == reflect.Ptr {
		messageType = messageType.Elem()
	}

	schemaName := messageType.Name()
	switch schemaName {
	case "FieldDefinition", "AvroFieldDefinition":
		return "custom_field_definitions", nil
	case "FieldTab", "AvroFieldTab":
		return "custom_field_tabs", nil
	case "FieldValue", "AvroFieldValue":
		return "custom_field_values", nil
	default:
		return "", fmt.Errorf("no Avro schema found for message type: %s", schemaName)
	}
}

// getOrRegisterSchemaID gets or registers the schema in the registry and returns its ID
func (c *ConfluentAvroCodec) getOrRegisterSchemaID(schemaName string) (int, error) {
	subject := schemaName + c.subjectSuffix

	ctx := context.Background()
	if cached, found := c.schemaCache.Get(ctx, subject); found {
		if id, ok := cached.(int); ok {
			return id, nil
		}
	}

	registered, err := c.schemaRegistry.GetLatestSchema(subject)
	if err == nil && registered != nil {
		c.schemaCache.Set(ctx, subject, registered.ID(), _defaultSchemaCacheTTL)
		return registered.ID(), nil
	}

	schema, err := staticSchemaFor(schemaName)
	if err != nil {
		return 0, fmt.Errorf("resolving schema: %w", err)
	}

	newSchema, err := c.schemaRegistry.CreateSchema(subject, schema, srclient.Avro)
	if err != nil {
		return 0, fmt.Errorf("registering schema: %w", err)
	}

	c.schemaCache.Set(ctx, subject, newSchema.ID(), _defaultSchemaCacheTTL)
	return newSchema.ID(), nil
}

// getCodecByID fetches the codec for a schema ID from the registry if not cached
func (c *ConfluentAvroCodec) getCodecByID(schemaID int) (*goavro.Codec, error) {
	ctx := context.Background()
	schemaIDKey := fmt.Sprintf("schema_%d", schemaID)

	if cached, found := c.codecCache.Get(ctx, schemaIDKey); found {
		if codec, ok := cached.(*goavro.Codec); ok {
			return codec, nil
		}
	}

	schema, err := c.schemaRegistry.GetSchema(schemaID)
	if err != nil {
		return nil, fmt.Errorf("fetching schema from registry: %w", err)
	}
	codec, err := goavro.NewCodec(schema.Schema())
	if err != nil {
		return nil, fmt.Errorf("creating codec from schema: %w", err)
	}
	c.codecCache.Set(ctx, schemaIDKey, codec, _defaultCodecCacheTTL)
	return codec, nil
}

// staticSchemaFor returns the schema definition registered for new subjects
func staticSchemaFor(schemaName string) (string, error) {
	switch schemaName {
	case "custom_field_definitions":
		return fieldDefinitionSchema, nil
	case "custom_field_tabs":
		return fieldTabSchema, nil
	case "custom_field_values":
		return fieldValueSchema, nil
	default:
		return "", fmt.Errorf("no schema definition for %s", schemaName)
	}
}

// Encode encodes a value into Confluent Avro format with schema registry
func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	avroValue, err := c.convertToAvroStruct(value)
	if err != nil {
		return nil, fmt.Errorf("converting to Avro struct: %w", err)
	}

	schemaName, err := c.getSchemaForMessage(value)
	if err != nil {
		return nil, fmt.Errorf("getting schema for message: %w", err)
	}

	schemaID, err := c.getOrRegisterSchemaID(schemaName)
	if err != nil {
		return nil, fmt.Errorf("getting schema ID: %w", err)
	}

	codec, err := c.getCodecByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema ID: %w", err)
	}

	avroData, err := codec.BinaryFromNative(nil, avroValue)
	if err != nil {
		return nil, fmt.Errorf("encoding to Avro: %w", err)
	}

	result := make([]byte, 5+len(avroData))
	result[0] = 0 // Magic byte
	binary.BigEndian.PutUint32(result[1:5], uint32(schemaID))
	copy(result[5:], avroData)

	return result, nil
}

// Decode decodes a value from Confluent Avro format with schema registry
func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("invalid Avro data: too short")
	}
	if data[0] != 0 {
		return nil, fmt.Errorf("invalid magic byte: expected 0, got %d", data[0])
	}
	schemaID := int(binary.BigEndian.Uint32(data[1:5]))
	avroData := data[5:]

	codec, err := c.getCodecByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema ID: %w", err)
	}

	native, _, err := codec.NativeFromBinary(avroData)
	if err != nil {
		return nil, fmt.Errorf("decoding Avro data: %w", err)
	}

	result, err := c.convertFromAvroStruct(native)
	if err != nil {
		return nil, fmt.Errorf("converting from Avro struct: %w", err)
	}

	return result, nil
}

// convertToAvroStruct converts a message struct into the goavro native representation
func (c *ConfluentAvroCodec) convertToAvroStruct(value any) (any, error) {
	switch v := value.(type) {
	case *AvroFieldDefinition:
		return fieldDefinitionToNative(v), nil
	case AvroFieldDefinition:
		return fieldDefinitionToNative(&v), nil
	case *AvroFieldTab:
		return fieldTabToNative(v), nil
	case AvroFieldTab:
		return fieldTabToNative(&v), nil
	case *AvroFieldValue:
		return fieldValueToNative(v), nil
	case AvroFieldValue:
		return fieldValueToNative(&v), nil
	default:
		return nil, fmt.Errorf("unsupported message type: %T", value)
	}
}

func fieldDefinitionToNative(v *AvroFieldDefinition) map[string]any {
	result := map[string]any{
		"id":            v.ID,
		"version":       v.Version,
		"entity_type":   v.EntityType,
		"entity_id":     v.EntityID,
		"field_name":    v.FieldName,
		"field_type":    v.FieldType,
		"field_options": v.FieldOptions,
		"is_required":   v.IsRequired,
		"display_order": v.DisplayOrder,
		"created_at":    v.CreatedAt,
		"updated_at":    v.UpdatedAt,
	}

	// Nullable tab_id maps to an Avro union
	if v.TabID != nil {
		result["tab_id"] = map[string]any{"string": *v.TabID}
	} else {
		result["tab_id"] = nil
	}

	return result
}

func fieldTabToNative(v *AvroFieldTab) map[string]any {
	return map[string]any{
		"id":            v.ID,
		"version":       v.Version,
		"entity_type":   v.EntityType,
		"entity_id":     v.EntityID,
		"tab_name":      v.TabName,
		"display_order": v.DisplayOrder,
		"created_at":    v.CreatedAt,
		"updated_at":    v.UpdatedAt,
	}
}

func fieldValueToNative(v *AvroFieldValue) map[string]any {
	return map[string]any{
		"id":                 v.ID,
		"version":            v.Version,
		"custom_field_id":    v.CustomFieldID,
		"entity_instance_id": v.EntityInstanceID,
		"field_value":        v.FieldValue,
		"created_at":         v.CreatedAt,
		"updated_at":         v.UpdatedAt,
	}
}

// convertFromAvroStruct converts the goavro native representation back into the
// message type selected by the codec's prototype
func (c *ConfluentAvroCodec) convertFromAvroStruct(value any) (any, error) {
	mapValue, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected Avro native type: %T", value)
	}

	switch c.prototype.(type) {
	case AvroFieldDefinition, *AvroFieldDefinition:
		return &AvroFieldDefinition{
			ID:           getString(mapValue, "id"),
			Version:      getInt(mapValue, "version"),
			EntityType:   getString(mapValue, "entity_type"),
			EntityID:     getString(mapValue, "entity_id"),
			FieldName:    getString(mapValue, "field_name"),
			FieldType:    getString(mapValue, "field_type"),
			FieldOptions: getString(mapValue, "field_options"),
			IsRequired:   getBool(mapValue, "is_required"),
			TabID:        getStringPtr(mapValue, "tab_id"),
			DisplayOrder: getInt(mapValue, "display_order"),
			CreatedAt:    getTime(mapValue, "created_at"),
			UpdatedAt:    getTime(mapValue, "updated_at"),
		}, nil
	case AvroFieldTab, *AvroFieldTab:
		return &AvroFieldTab{
			ID:           getString(mapValue, "id"),
			Version:      getInt(mapValue, "version"),
			EntityType:   getString(mapValue, "entity_type"),
			EntityID:     getString(mapValue, "entity_id"),
			TabName:      getString(mapValue, "tab_name"),
			DisplayOrder: getInt(mapValue, "display_order"),
			CreatedAt:    getTime(mapValue, "created_at"),
			UpdatedAt:    getTime(mapValue, "updated_at"),
		}, nil
	case AvroFieldValue, *AvroFieldValue:
		return &AvroFieldValue{
			ID:               getString(mapValue, "id"),
			Version:          getInt(mapValue, "version"),
			CustomFieldID:    getString(mapValue, "custom_field_id"),
			EntityInstanceID: getString(mapValue, "entity_instance_id"),
			FieldValue:       getString(mapValue, "field_value"),
			CreatedAt:        getTime(mapValue, "created_at"),
			UpdatedAt:        getTime(mapValue, "updated_at"),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported prototype type: %T", c.prototype)
	}
}

func getString(m map[string]any, key string) string {
	if value, ok := m[key].(string); ok {
		return value
	}
	return ""
}

// getStringPtr unwraps a ["null", "string"] union value
func getStringPtr(m map[string]any, key string) *string {
	switch value := m[key].(type) {
	case string:
		return &value
	case map[string]any:
		if s, ok := value["string"].(string); ok {
			return &s
		}
	}
	return nil
}

func getInt(m map[string]any, key string) int {
	switch value := m[key].(type) {
	case int:
		return value
	case int32:
		return int(value)
	case int64:
		return int(value)
	case float64:
		return int(value)
	}
	return 0
}

func getBool(m map[string]any, key string) bool {
	if value, ok := m[key].(bool); ok {
		return value
	}
	return false
}

func getTime(m map[string]any, key string) time.Time {
	switch value := m[key].(type) {
	case time.Time:
		return value
	case int64:
		return time.UnixMilli(value)
	case map[string]any:
		if inner, ok := value["long.timestamp-millis"]; ok {
			switch ts := inner.(type) {
			case time.Time:
				return ts
			case int64:
				return time.UnixMilli(ts)
			}
		}
	}
	return time.Time{}
}
