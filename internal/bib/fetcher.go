package bib

import (
	"context"
	"errors"
	"fmt"
	"log"

	"bibapi/internal/platform/ils"
)

type FetcherConfig struct {
	// Verbose enables the per-step trace.
	Verbose bool
	// StrictPayload makes a detail payload without bib_data or holding_data
	// fail the whole fetch instead of skipping the item.
	StrictPayload bool
}

// Fetcher walks the member list and dereferences every member link, one
// request at a time.
type Fetcher struct {
	client ILSClient
	cfg    FetcherConfig
	logger *log.Logger
}

func NewFetcher(client ILSClient, cfg FetcherConfig) *Fetcher {
	return &Fetcher{client: client, cfg: cfg, logger: log.Default()}
}

// WithLogger replaces the trace destination.
func (f *Fetcher) WithLogger(logger *log.Logger) *Fetcher {
	f.logger = logger
	return f
}

func (f *Fetcher) tracef(format string, args ...any) {
	if f.cfg.Verbose {
		f.logger.Printf(format, args...)
	}
}

// FetchAll returns the records of every member whose detail could be
// fetched, in member order. Only the member list request is fatal; a failed
// detail request skips its member.
func (f *Fetcher) FetchAll(ctx context.Context) ([]Record, error) {
	f.tracef("ils session=open")
	session := f.client.Open()
	defer func() {
		session.Close()
		f.tracef("ils session=closed")
	}()

	f.tracef("ils fetching member list")
	list, err := session.MemberList(ctx)
	if err != nil {
		if errors.Is(err, ils.ErrMalformedPayload) {
			return nil, fmt.Errorf("%w: member list: %w", ErrPayload, err)
		}
		return nil, fmt.Errorf("%w: member list: %w", ErrTransport, err)
	}
	if list.Member == nil {
		return nil, fmt.Errorf("%w: member list: missing key %q", ErrPayload, "member")
	}
	if list.TotalRecordCount == nil {
		return nil, fmt.Errorf("%w: member list: missing key %q", ErrPayload, "total_record_count")
	}
	members := *list.Member
	f.tracef("ils total_record_count=%d members=%d", *list.TotalRecordCount, len(members))

	records := make([]Record, 0, len(members))
	index := 1
	for _, member := range members {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !member.HasLink() {
			continue
		}

		record, err := f.fetchRecord(ctx, session, index, *member.Link)
		index++
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if f.cfg.StrictPayload && errors.Is(err, ErrPayload) {
				return nil, err
			}
			f.tracef("record=%d skipped: %v", index-1, err)
			continue
		}

		records = append(records, record)
		f.tracef("record=%d added\n%s", index-1, record)
	}

	return records, nil
}

func (f *Fetcher) fetchRecord(ctx context.Context, session ILSSession, index int, link string) (Record, error) {
	f.tracef("record=%d link=%s", index, link)

	detail, err := session.Detail(ctx, link)
	if err != nil {
		if errors.Is(err, ils.ErrMalformedPayload) {
			return Record{}, fmt.Errorf("%w: record %d: %w", ErrPayload, index, err)
		}
		return Record{}, fmt.Errorf("record %d: %w", index, err)
	}
	if detail.BibData == nil {
		return Record{}, fmt.Errorf("%w: record %d: missing key %q", ErrPayload, index, "bib_data")
	}
	if detail.HoldingData == nil {
		return Record{}, fmt.Errorf("%w: record %d: missing key %q", ErrPayload, index, "holding_data")
	}

	return Record{
		Title:             Clean(detail.BibData.Title),
		Author:            Clean(detail.BibData.Author),
		ISBN:              Clean(detail.BibData.ISBN),
		DateOfPublication: Clean(detail.BibData.DateOfPublication),
		CallNumber:        Clean(detail.HoldingData.CallNumber),
	}, nil
}
