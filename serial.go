// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing session identifier.
// Sessions of both kinds draw from the same counter: each call to
// New or NewEff assigns the next serial value.
type Serial = uint32

var sessionSerials atomix.Uint32

func nextSerial() Serial {
	return sessionSerials.Add(1)
}

// TxID identifies one outermost transaction. Drivers of both kinds draw
// from the same process-wide counter when an outermost transaction
// starts, so IDs order transactions across sessions. Coalesced calls
// share the ID of the outermost transaction they joined; rejected calls
// draw none.
type TxID = uint32

var txSerials atomix.Uint32

func nextTxID() TxID {
	return txSerials.Add(1)
}
