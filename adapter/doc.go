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

// Package adapter composes the foreign error converters of its
// sub-packages into a Lifter and provides flat views of described errors
// for logs and transports.
//
// Each sub-package claims the errors of one subsystem:
//
//   - dberr: gorm, MySQL, database/sql, MongoDB, Redis;
//   - mqerr: Kafka (sarama);
//   - configerr: TOML, viper, validator;
//   - jsonerr: encoding/json and goccy/go-json;
//   - ioerr: filesystem and network errors.
//
// Usage:
//
//	d := adapter.Default().Lift(err)
//	log.WithFields(logx.Fields(d)).Warn("request failed")
package adapter
