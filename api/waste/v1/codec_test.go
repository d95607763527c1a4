package wastev1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestCodec_RegisteredUnderJSON(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, "json", c.Name())
}

func TestCodec_PlainStructsUseJSON(t *testing.T) {
	var c Codec
	b, err := c.Marshal(&UpdatePickupStatusRequest{Id: "p1", Status: "COMPLETED"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"p1","status":"COMPLETED"}`, string(b))

	var out UpdatePickupStatusRequest
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, "p1", out.Id)

	var empty ListTrucksRequest
	assert.NoError(t, c.Unmarshal(nil, &empty))
}

func TestCodec_ProtoMessagesUseWireFormat(t *testing.T) {
	var c Codec
	in := &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}
	b, err := c.Marshal(in)
	require.NoError(t, err)
	out := &healthpb.HealthCheckResponse{}
	require.NoError(t, c.Unmarshal(b, out))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, out.GetStatus())
}
