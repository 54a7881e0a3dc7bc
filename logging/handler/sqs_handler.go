package handler

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/sirupsen/logrus"

	"github.com/s4mli/farola/cleaner"
	"github.com/s4mli/farola/common"
)

type sqsHandler struct {
	qService *sqs.SQS
	qUrl     string
	logger   logrus.FieldLogger
}

func (h *sqsHandler) Emit(line string) {
	params := &sqs.SendMessageInput{
		QueueUrl:    aws.String(h.qUrl),
		MessageBody: aws.String(line),
	}
	if _, err := h.qService.SendMessage(params); err != nil {
		h.logger.WithField("&", "Emit").Error("=> SendMessage: ", err)
	}
}

func (h *sqsHandler) Name() string { return "sqs(" + h.qUrl + ")" }
func (h *sqsHandler) Stop()        {}

func connect(logger logrus.FieldLogger, qRegion string) *sqs.SQS {
	config := &aws.Config{
		Region:   &qRegion,
		LogLevel: aws.LogLevel(aws.LogOff)}
	var err error = nil
	var s *session.Session = nil
	retry := 0
	for {
		if s, err = session.NewSession(config); err != nil {
			logger.Errorf("connect failed ( %d, %s )", retry, err.Error())
			retry++
			time.Sleep(common.RandomDuration(retry))
		} else {
			break
		}
	}
	return sqs.New(s, config)
}

func NewSqsHandler(qRegion, qUrl string, logger logrus.FieldLogger) *sqsHandler {
	h := &sqsHandler{connect(logger, qRegion), qUrl, logger}
	cleaner.Register(h)
	return h
}
