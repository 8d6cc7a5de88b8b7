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

package mqerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/coderr/code"
)

func TestConvert_Table(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want code.Code
	}{
		{"out of brokers", sarama.ErrOutOfBrokers, code.ConnectionMessageQuqueError},
		{"closed client", fmt.Errorf("produce: %w", sarama.ErrClosedClient), code.ConnectionMessageQuqueError},
		{"unknown topic", sarama.ErrUnknownTopicOrPartition, code.InvalidMessageQuque},
		{"rebalance", sarama.ErrRebalanceInProgress, code.SubscribeMessageQuqueFail},
		{"closed group", sarama.ErrClosedConsumerGroup, code.SubscribeMessageQuqueFail},
		{"timeout", sarama.ErrRequestTimedOut, code.FetchMessageTimeout},
		{"too large", sarama.ErrMessageSizeTooLarge, code.InvalidMessageData},
		{"consumer generic", &sarama.ConsumerError{Topic: "t", Partition: 1, Err: errors.New("decode failed")}, code.FetchMessageFail},
		{"consumer specific", &sarama.ConsumerError{Topic: "t", Partition: 1, Err: sarama.ErrUnknownTopicOrPartition}, code.InvalidMessageQuque},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Convert(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.want, d.Code())
			assert.Equal(t, tt.err.Error(), d.Description())
		})
	}
}

func TestConvert_NotClaimed(t *testing.T) {
	_, ok := Convert(errors.New("plain"))
	assert.False(t, ok)
	_, ok = Convert(sarama.ErrUnsupportedVersion)
	assert.False(t, ok, "unlisted kafka errors are left to the fallback")
	_, ok = Convert(nil)
	assert.False(t, ok)
}
