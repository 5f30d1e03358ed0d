package kafka

import (
	"context"
	"encoding/json"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/money-tracker/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	ReportsTopic() string
}

// ReportRequest asks the reporter worker to build one owner's report
// for one period.
type ReportRequest struct {
	Owner  string `json:"owner"`
	Period string `json:"period"`
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	return &Producer{
		producer: producer,
		topic:    cfg.ReportsTopic(),
	}, err
}

func (p *Producer) RequestReport(_ context.Context, owner, period string) error {
	raw, err := json.Marshal(ReportRequest{Owner: owner, Period: period})
	if err != nil {
		return errors.Wrap(err, "marshal report request")
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(owner),
		Value: sarama.ByteEncoder(raw),
	})
	return errors.Wrap(err, "produce report request")
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
