package pubsub

// Factory creates the pubsub implementation matching the environment. The
// engine only publishes; consumers exist as ports with the in-memory broker
// pairing them for tests.
type Factory struct {
	publisherFactory PublisherFactory
}

type FactoryOptions struct {
	Environment       string
	KafkaBrokers      []string
	SchemaRegistryURL string
}

func NewFactory(opts FactoryOptions) *Factory {
	if opts.Environment == "local" {
		return &Factory{
			publisherFactory: NewMemoryPublisherFactory(),
		}
	}

	return &Factory{
		publisherFactory: NewKafkaPublisherFactory(KafkaPublisherFactoryOptions{
			Brokers:           opts.KafkaBrokers,
			SchemaRegistryURL: opts.SchemaRegistryURL,
		}),
	}
}

func (f *Factory) GetPublisherFactory() PublisherFactory {
	return f.publisherFactory
}
