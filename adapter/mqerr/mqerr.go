/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package mqerr converts Kafka client errors (github.com/IBM/sarama) into the
// messaging band of the code registry.
package mqerr

import (
	"errors"

	"github.com/IBM/sarama"

	"dirpx.dev/coderr"
	"dirpx.dev/coderr/code"
)

type rule struct {
	errs []error
	code code.Code
}

// rules are evaluated in order; the first matching group wins.
var rules = []rule{
	{
		// The client cannot reach (or no longer talks to) the cluster.
		errs: []error{
			sarama.ErrOutOfBrokers,
			sarama.ErrClosedClient,
			sarama.ErrNotConnected,
			sarama.ErrShuttingDown,
			sarama.ErrControllerNotAvailable,
			sarama.ErrBrokerNotAvailable,
			sarama.ErrLeaderNotAvailable,
		},
		code: code.ConnectionMessageQuqueError,
	},
	{
		errs: []error{
			sarama.ErrUnknownTopicOrPartition,
			sarama.ErrInvalidTopic,
		},
		code: code.InvalidMessageQuque,
	},
	{
		// Group membership failures.
		errs: []error{
			sarama.ErrClosedConsumerGroup,
			sarama.ErrConsumerCoordinatorNotAvailable,
			sarama.ErrNotCoordinatorForConsumer,
			sarama.ErrOffsetsLoadInProgress,
			sarama.ErrIllegalGeneration,
			sarama.ErrInconsistentGroupProtocol,
			sarama.ErrInvalidGroupId,
			sarama.ErrUnknownMemberId,
			sarama.ErrInvalidSessionTimeout,
			sarama.ErrRebalanceInProgress,
		},
		code: code.SubscribeMessageQuqueFail,
	},
	{
		errs: []error{sarama.ErrRequestTimedOut},
		code: code.FetchMessageTimeout,
	},
	{
		errs: []error{
			sarama.ErrInvalidMessage,
			sarama.ErrInvalidMessageSize,
			sarama.ErrMessageSizeTooLarge,
			sarama.ErrMessageSetSizeTooLarge,
			sarama.ErrMessageTooLarge,
		},
		code: code.InvalidMessageData,
	},
}

// CodeOf returns the registry code for a sarama error, or false when err
// carries no known sarama failure.
func CodeOf(err error) (code.Code, bool) {
	if err == nil {
		return 0, false
	}
	for _, r := range rules {
		for _, target := range r.errs {
			if errors.Is(err, target) {
				return r.code, true
			}
		}
	}
	var consumerErr *sarama.ConsumerError
	if errors.As(err, &consumerErr) {
		return code.FetchMessageFail, true
	}
	return 0, false
}

// Convert claims sarama errors. The description is the error's own message
// and err is retained as the cause.
func Convert(err error) (*coderr.Described, bool) {
	c, ok := CodeOf(err)
	if !ok {
		return nil, false
	}
	return coderr.Describe(c, err.Error(), coderr.WithCause(err)), true
}
