package util

import (
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go"
	"github.com/influxdata/influxdb-client-go/api"
)

func TimeOperationMicroseconds(op func()) int64 {
	start := time.Now()
	op()
	return time.Since(start).Microseconds()
}

// NewWriteAPI connects to InfluxDB at host, or returns a MockWriteAPI when host is empty.
// The returned func flushes pending points and releases the client.
func NewWriteAPI(host, token, organization, bucket string) (api.WriteAPI, func()) {
	if host == "" {
		return &MockWriteAPI{}, func() {}
	}
	client := influxdb2.NewClient(host, token)
	writeAPI := client.WriteAPI(organization, bucket)
	return writeAPI, func() {
		writeAPI.Flush()
		client.Close()
	}
}
