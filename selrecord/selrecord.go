// Package selrecord decodes the fixed-size IPMI System Event Log
// record that may precede a Platform Event Log blob.
package selrecord

import (
	"github.com/YADRO-KNS/openpower-esel-parser/eselerr"
	"github.com/YADRO-KNS/openpower-esel-parser/internal/bufdecoder"
	"github.com/YADRO-KNS/openpower-esel-parser/param"
)

// Size is the wire size of a SelRecord, in bytes.
const Size = 16

// SelRecord is the IPMI-defined 16-byte fixed-layout event that may
// precede an eSEL blob.
type SelRecord struct {
	RecordID      uint16
	RecordType    uint8
	Timestamp     uint32
	GeneratorID   uint16
	EventRevision uint8
	SensorType    uint8
	SensorNum     uint8
	EventType     uint8
	EventData1    uint8
	EventData2    uint8
	EventData3    uint8
}

// Parse decodes a SelRecord from the first Size bytes of data. It
// returns an error if data is shorter than Size.
func Parse(data []byte) (SelRecord, error) {
	if len(data) < Size {
		return SelRecord{}, eselerr.Newf("buffer too small to fit SEL record: %d bytes, expected %d", len(data), Size)
	}

	d := bufdecoder.New(data[:Size])
	var r SelRecord
	r.RecordID = d.U16()
	r.RecordType = d.U8()
	r.Timestamp = d.U32()
	r.GeneratorID = d.U16()
	r.EventRevision = d.U8()
	r.SensorType = d.U8()
	r.SensorNum = d.U8()
	r.EventType = d.U8()
	r.EventData1 = d.U8()
	r.EventData2 = d.U8()
	r.EventData3 = d.U8()
	return r, nil
}

// Params returns a human-readable description of the record's fields,
// in wire order.
func (r SelRecord) Params() param.Params {
	var ps param.Params
	ps = ps.Append(
		param.NewNumeric("Record ID", uint64(r.RecordID), 2),
		param.NewNumeric("Record type", uint64(r.RecordType), 1),
		param.NewNumeric("Timestamp", uint64(r.Timestamp), 4),
		param.NewNumeric("Generator ID", uint64(r.GeneratorID), 2),
		param.NewNumeric("Event revision", uint64(r.EventRevision), 1),
		param.NewNumeric("Sensor type", uint64(r.SensorType), 1),
		param.NewNumeric("Sensor number", uint64(r.SensorNum), 1),
		param.NewNumeric("Event type", uint64(r.EventType), 1),
		param.NewNumeric("Event data 1", uint64(r.EventData1), 1),
		param.NewNumeric("Event data 2", uint64(r.EventData2), 1),
		param.NewNumeric("Event data 3", uint64(r.EventData3), 1),
	)
	return ps
}
