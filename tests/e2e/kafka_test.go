//go:build integration

package e2e

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/IBM/sarama"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	tc "github.com/testcontainers/testcontainers-go"
	kafkaTc "github.com/testcontainers/testcontainers-go/modules/kafka"

	envconfig "github.com/AdrianoSaraivaa/sgp/internal/config/env"
	"github.com/AdrianoSaraivaa/sgp/internal/converter"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	resconsumer "github.com/AdrianoSaraivaa/sgp/internal/service/consumer/result"
	reoproducer "github.com/AdrianoSaraivaa/sgp/internal/service/producer/reorder"
	"github.com/AdrianoSaraivaa/sgp/platform/kafka"
	"github.com/AdrianoSaraivaa/sgp/platform/kafka/consumer"
	"github.com/AdrianoSaraivaa/sgp/platform/kafka/middleware"
	"github.com/AdrianoSaraivaa/sgp/platform/kafka/producer"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

const (
	kafkaImage = "confluentinc/cp-kafka:7.6.1"

	topicResults = "line.test-results"
	topicReorder = "line.reorder"
)

var _ = Describe("Kafka adapters", Ordered, func() {
	var (
		kafkaC   tc.Container
		brokers  []string
		kafkaCfg interface {
			TestResultsConsumerConfig() *sarama.Config
			ReorderProducerConfig() *sarama.Config
			ConsumerGroupID() string
		}
		syncProducer  sarama.SyncProducer
		consumerGroup sarama.ConsumerGroup
		cancel        context.CancelFunc
	)

	BeforeAll(func() {
		var err error

		By("starting kafka container (cp-kafka)")
		kafkaC, brokers, err = runKafka(ctx)
		Expect(err).NotTo(HaveOccurred())

		By("loading kafka config from env")
		Expect(os.Setenv("KAFKA_BROKERS", brokers[0])).To(Succeed())
		Expect(os.Setenv("TEST_RESULTS_TOPIC_NAME", topicResults)).To(Succeed())
		Expect(os.Setenv("REORDER_TOPIC_NAME", topicReorder)).To(Succeed())
		Expect(os.Setenv("TEST_RESULTS_CONSUMER_GROUP_ID", "sgp-line-it")).To(Succeed())
		kafkaCfg, err = envconfig.NewKafkaConfig()
		Expect(err).NotTo(HaveOccurred())

		By("creating kafka topics")
		Expect(createTopics(brokers, topicResults, topicReorder)).To(Succeed())

		syncProducer, err = sarama.NewSyncProducer(brokers, kafkaCfg.ReorderProducerConfig())
		Expect(err).NotTo(HaveOccurred())

		consumerGroup, err = sarama.NewConsumerGroup(brokers, kafkaCfg.ConsumerGroupID(), kafkaCfg.TestResultsConsumerConfig())
		Expect(err).NotTo(HaveOccurred())

		resultConsumer := resconsumer.NewResultConsumer(
			consumer.NewConsumer(
				consumerGroup,
				[]string{topicResults},
				logger.L(),
				middleware.Recovery(logger.L()),
				middleware.Logging(logger.L()),
			),
			converter.NewKafkaConverter(),
			scanSvc,
		)

		By("starting test result consumer in background")
		var consumeCtx context.Context
		consumeCtx, cancel = context.WithCancel(ctx)
		consumerErrCh := make(chan error, 1)
		go func() {
			consumerErrCh <- resultConsumer.RunTestResultConsume(consumeCtx)
		}()
		Consistently(consumerErrCh, 2*time.Second).ShouldNot(Receive())
	})

	AfterAll(func() {
		if cancel != nil {
			cancel()
		}
		if consumerGroup != nil {
			_ = consumerGroup.Close()
		}
		if syncProducer != nil {
			_ = syncProducer.Close()
		}
		if kafkaC != nil {
			_ = kafkaC.Terminate(ctx)
		}
	})

	It("closes the safety station when the tester publishes an approval", func() {
		seedModel("PX2", "4", 10)

		res, err := prodSvc.Launch(ctx, model.LaunchParams{ModelCode: "PX2", Quantity: 1, User: "planner"})
		Expect(err).NotTo(HaveOccurred())
		sn := res.Serials[0]

		for _, raw := range []string{"b1-" + sn, "b1-" + sn, "b5-" + sn} {
			_, err := scanSvc.Scan(ctx, model.ScanRequest{Raw: raw, Operator: "rui"})
			Expect(err).NotTo(HaveOccurred(), raw)
		}

		payload, err := json.Marshal(converter.TestResultRecord{
			Serial: sn,
			Source: string(model.SourceSafetyTest),
			Status: string(model.ExternalApproved),
		})
		Expect(err).NotTo(HaveOccurred())

		_, _, err = syncProducer.SendMessage(&sarama.ProducerMessage{
			Topic: topicResults,
			Key:   sarama.StringEncoder(sn),
			Value: sarama.ByteEncoder(payload),
		})
		Expect(err).NotTo(HaveOccurred())

		By("waiting until the unit moves on to the checklist station")
		Eventually(func(g Gomega) {
			ord, err := scanSvc.Order(ctx, sn)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(ord.CurrentStation).To(Equal("b8"))
			g.Expect(ord.ExternalTestStatus).To(Equal(string(model.ExternalApproved)))
		}).WithTimeout(15 * time.Second).WithPolling(200 * time.Millisecond).Should(Succeed())
	})

	It("publishes reorder notices keyed by part code", func() {
		sender := reoproducer.NewReorderProducer(
			producer.NewProducer(syncProducer, topicReorder, logger.L()),
			converter.NewKafkaConverter(),
		)

		Expect(sender.SendReorder(ctx, model.ReorderNotice{
			PartCode:     "ASM-PX2",
			CurrentStock: 1,
			ReorderPoint: 2,
			MaximumStock: 5,
			SuggestedQty: 4,
		})).To(Succeed())

		rec, err := readOne(brokers, topicReorder)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(rec.Key)).To(Equal("ASM-PX2"))

		var got converter.ReorderRecord
		Expect(json.Unmarshal(rec.Value, &got)).To(Succeed())
		Expect(got.SuggestedQty).To(Equal(int64(4)))
		Expect(got.EventID).NotTo(BeEmpty())
	})
})

func runKafka(ctx context.Context) (tc.Container, []string, error) {
	c, err := kafkaTc.Run(ctx,
		kafkaImage,
		kafkaTc.WithClusterID("Mk3OEYBSD34fcwNTJENDM2Qk"),
	)
	if err != nil {
		return nil, nil, err
	}

	bootstrap, err := c.Brokers(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, nil, err
	}

	return c, bootstrap, nil
}

func createTopics(brokers []string, topics ...string) error {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Admin.Timeout = 10 * time.Second

	admin, err := sarama.NewClusterAdmin(brokers, cfg)
	if err != nil {
		return err
	}
	defer admin.Close()

	for _, t := range topics {
		err := admin.CreateTopic(t, &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		}, false)
		if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			return err
		}
	}
	return nil
}

// readOne consumes the first record of topic with a throwaway group.
func readOne(brokers []string, topic string) (kafka.Message, error) {
	cctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(brokers, "sgp-line-it-reader", cfg)
	if err != nil {
		return kafka.Message{}, err
	}
	defer group.Close()

	var got kafka.Message
	c := consumer.NewConsumer(group, []string{topic}, logger.L())
	err = c.Consume(cctx, func(_ context.Context, msg kafka.Message) error {
		got = msg
		cancel()
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return kafka.Message{}, err
	}
	if got.Value == nil {
		return kafka.Message{}, errors.New("no record received")
	}

	return got, nil
}
