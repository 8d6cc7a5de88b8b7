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

package code

import (
	"fmt"
	"strings"

	"dirpx.dev/coderr/reason"
)

// table is the closed registry. Rows are kept in ascending code order and
// are append-only within their band.
var table = []Entry{
	// I/O
	{FileNotFound, "FileNotFound", reason.Text{EN: "file not found", CN: "文件未发现"}},
	{PermissionDenied, "PermissionDenied", reason.Text{EN: "permission denied", CN: "操作被拒绝"}},
	{ConnectionRefused, "ConnectionRefused", reason.Text{EN: "connection refused", CN: "远程服务器连接被拒绝"}},
	{ConnectionReset, "ConnectionReset", reason.Text{EN: "connection reset", CN: "远程服务器连接被重置"}},
	{ConnectionAborted, "ConnectionAborted", reason.Text{EN: "connection aborted", CN: "远程服务器连接被中止"}},
	{NotConnected, "NotConnected", reason.Text{EN: "not connected", CN: "网络操作失败，没有连接"}},
	{AddrInUse, "AddrInUse", reason.Text{EN: "address in use", CN: "Socket地址被占用"}},
	{AddrNotAvailable, "AddrNotAvailable", reason.Text{EN: "address not available", CN: "请求的地址不存在"}},
	{BrokenPipe, "BrokenPipe", reason.Text{EN: "broken pipe", CN: "操作失败，因为管道已关闭"}},
	{AlreadyExists, "AlreadyExists", reason.Text{EN: "entity already exists", CN: "文件已存在"}},
	{WouldBlock, "WouldBlock", reason.Text{EN: "operation would block", CN: "操作需要阻塞才能完成"}},
	{InvalidInput, "InvalidInput", reason.Text{EN: "invalid input parameter", CN: "参数错误"}},
	{InvalidData, "InvalidData", reason.Text{EN: "invalid data", CN: "数据无效"}},
	{TimedOut, "TimedOut", reason.Text{EN: "timed out", CN: "操作超时"}},
	{WriteZero, "WriteZero", reason.Text{EN: "write zero", CN: "写入时返回空数据"}},
	{Interrupted, "Interrupted", reason.Text{EN: "operation interrupted", CN: "操作中断"}},
	{Other, "Other", reason.Text{EN: "other os error", CN: "其他I/O错误"}},
	{UnexpectedEOF, "UnexpectedEOF", reason.Text{EN: "unexpected end of file", CN: "操作需要阻塞才能完成"}},

	// Messaging
	{InvalidMessageQuque, "InvalidMessageQuque", reason.Text{EN: "invalid message quque", CN: "无效的消息队列类型"}},
	{ConnectionMessageQuqueError, "ConnectionMessageQuqueError", reason.Text{EN: "connection message quque error", CN: "连接消息队列失败"}},
	{SubscribeMessageQuqueFail, "SubscribeMessageQuqueFail", reason.Text{EN: "subscribe message quque fail", CN: "订阅消息队列失败"}},
	{FetchMessageFail, "FetchMessageFail", reason.Text{EN: "fetch message fail", CN: "获取消息失败"}},
	{FetchMessageTimeout, "FetchMessageTimeout", reason.Text{EN: "fetch message timeout", CN: "获取消息超时"}},
	{InvalidMessageData, "InvalidMessageData", reason.Text{EN: "invalid message data", CN: "无效的消息格式"}},
	{InvalidCommand, "InvalidCommand", reason.Text{EN: "invalid command", CN: "无效的消息指令"}},
	{InvalidUseRule, "InvalidUseRule", reason.Text{EN: "invalid use rule", CN: "无效的规则"}},

	// Persistence
	{DataBaseInvalidQuery, "DataBaseInvalidQuery", reason.Text{EN: "dataBase invalid query", CN: "数据库查询参数错误"}},
	{DataBaseError, "DataBaseError", reason.Text{EN: "database error", CN: "数据库返回错误"}},
	{DataBaseNotFound, "DataBaseNotFound", reason.Text{EN: "result not found", CN: "没有查询到结果"}},
	{InvalidConnection, "InvalidConnection", reason.Text{EN: "DataBase Invalid Connection", CN: "数据连接无效"}},

	// Device
	{ConnectionDeviceError, "ConnectionDeviceError", reason.Text{EN: "connection device error", CN: "连接设备失败"}},
	{ConnectionDeviceTimeout, "ConnectionDeviceTimeout", reason.Text{EN: "connection device timeout", CN: "连接设备超时"}},
	{DeviceAddrInvalid, "DeviceAddrInvalid", reason.Text{EN: "device address invalid", CN: "设备地址无效"}},
	{DeviceNotFound, "DeviceNotFound", reason.Text{EN: "device not found", CN: "设备不存在"}},
	{InvalidDeviceType, "InvalidDeviceType", reason.Text{EN: "invalid device type", CN: "不支持的设备类型"}},
	{SendDataTimeout, "SendDataTimeout", reason.Text{EN: "send data timeout", CN: "发送数据超时"}},
	{SendDataFail, "SendDataFail", reason.Text{EN: "send data fail", CN: "发送数据失败"}},
	{InvalidSendData, "InvalidSendData", reason.Text{EN: "invalid send data", CN: "发送数据无效"}},
	{ReceiveDataTimeout, "ReceiveDataTimeout", reason.Text{EN: "receive data timeout", CN: "接收数据超时"}},
	{ReceiveDataFail, "ReceiveDataFail", reason.Text{EN: "receive data fail", CN: "接收数据失败"}},
	{ReceiveUnexpectedEOF, "ReceiveUnexpectedEOF", reason.Text{EN: "receive unexpected eof", CN: "设备连接异常结束"}},
	{DeviceAlreadyExist, "DeviceAlreadyExist", reason.Text{EN: "device already exist", CN: "设备已存在"}},
	{DeviceNotUsed, "DeviceNotUsed", reason.Text{EN: "device not used", CN: "设备不可用"}},
	{DeviceReportError, "DeviceReportError", reason.Text{EN: "device report error", CN: "设备执行指令报错"}},

	// System
	{UnexpectedErrorOccured, "UnexpectedErrorOccured", reason.Text{EN: "unexpected error occured", CN: "发生意外错误"}},
	{ServerRegisterFail, "ServerRegisterFail", reason.Text{EN: "server register fail", CN: "服务注册失败"}},
	{ConfigurationInvalid, "ConfigurationInvalid", reason.Text{EN: "configuration invalid", CN: "配置无效"}},
	{UnKnowError, "UnKnowError", reason.Text{EN: "unknow error", CN: "未定义错误"}},

	// Authorization
	{RoleTypeError, "RoleTypeError", reason.Text{EN: "role type error", CN: "权限类型不存在"}},

	// Translation
	{TransInitError, "TransInitError", reason.Text{EN: "translate init error", CN: "翻译器初始化错误"}},
	{TransRegisterError, "TransRegisterError", reason.Text{EN: "translate register error", CN: "翻译器注册错误"}},
	{CheckError, "CheckError", reason.Text{EN: "translate check error", CN: "翻译check错误"}},
	{TransInnerError, "TransInnerError", reason.Text{EN: "translate inner error", CN: "翻译内部错误"}},
}

// byCode and byName are built once from table and never written afterwards,
// so concurrent reads need no synchronization.
var (
	byCode = make(map[Code]int, len(table))
	byName = make(map[string]Code, len(table))
)

func init() {
	for i, e := range table {
		if _, dup := byCode[e.Code]; dup {
			panic(fmt.Sprintf("code: duplicate registry code %d (%s)", e.Code, e.Name))
		}
		key := strings.ToLower(e.Name)
		if _, dup := byName[key]; dup {
			panic(fmt.Sprintf("code: duplicate registry identifier %q", e.Name))
		}
		byCode[e.Code] = i
		byName[key] = e.Code
	}
}
