package sanity

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	snowflakev1 "github.com/driftlab/snowflaked/api/gen/go/snowflake/v1"
)

type grpcPeer struct {
	conn   *grpc.ClientConn
	client snowflakev1.SnowflakeServiceClient
}

// DialPeer is the production DialFunc: a plaintext connection to a fleet
// member, closed as soon as the check is done.
func DialPeer(ctx context.Context, addr string) (PeerClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &grpcPeer{
		conn:   conn,
		client: snowflakev1.NewSnowflakeServiceClient(conn),
	}, nil
}

func (p *grpcPeer) WorkerID(ctx context.Context) (int64, error) {
	resp, err := p.client.GetWorkerId(ctx, &snowflakev1.GetWorkerIdRequest{})
	if err != nil {
		return 0, err
	}
	return resp.GetWorkerId(), nil
}

func (p *grpcPeer) Timestamp(ctx context.Context) (int64, error) {
	resp, err := p.client.GetTimestamp(ctx, &snowflakev1.GetTimestampRequest{})
	if err != nil {
		return 0, err
	}
	return resp.GetTimestampMs(), nil
}

func (p *grpcPeer) Close() error {
	return p.conn.Close()
}
