package bib

import (
	"context"

	"bibapi/internal/platform/ils"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=bib

// ILSSession is one connection-scoped conversation with the ILS.
type ILSSession interface {
	MemberList(ctx context.Context) (*ils.MemberList, error)
	Detail(ctx context.Context, link string) (*ils.Detail, error)
	Close()
}

// ILSClient opens sessions. Every fetch uses a fresh one.
type ILSClient interface {
	Open() ILSSession
}

// RecordFetcher produces the normalized records of one upstream set.
type RecordFetcher interface {
	FetchAll(ctx context.Context) ([]Record, error)
}

type ilsClientAdapter struct {
	client *ils.Client
}

// NewILSClient adapts an ils.Client to ILSClient.
func NewILSClient(client *ils.Client) ILSClient {
	return ilsClientAdapter{client: client}
}

func (a ilsClientAdapter) Open() ILSSession {
	return a.client.NewSession()
}
