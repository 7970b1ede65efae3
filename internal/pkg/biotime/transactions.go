package biotime

import (
	"context"
	"net/url"
	"strconv"
)

const transactionsPath = "/iclock/api/transactions/"

// fetchAllTransactionPageSize is the page size used when draining a punch
// window for a report.
const fetchAllTransactionPageSize = 2000

// Transaction is a raw punch record as returned by the upstream device API.
// PunchTime is the wire-format timestamp "YYYY-MM-DD HH:MM:SS"; parsing
// happens in the attendance core so format violations surface there.
type Transaction struct {
	EmpCode       string `json:"emp_code"`
	PunchTime     string `json:"punch_time"`
	TerminalAlias string `json:"terminal_alias,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	Department    string `json:"department,omitempty"`
}

// TransactionFilter narrows a transaction listing. Zero values mean
// "unfiltered"; StartTime and EndTime are wire-format timestamps.
type TransactionFilter struct {
	EmpCode   string
	StartTime string
	EndTime   string
}

// ListTransactions fetches a single page of punch records.
func (c *Client) ListTransactions(ctx context.Context, filter TransactionFilter, page, pageSize int) (Page[Transaction], error) {
	query := url.Values{
		"page":      []string{strconv.Itoa(page)},
		"page_size": []string{strconv.Itoa(pageSize)},
	}
	if filter.EmpCode != "" {
		query.Set("emp_code", filter.EmpCode)
	}
	if filter.StartTime != "" {
		query.Set("start_time", filter.StartTime)
	}
	if filter.EndTime != "" {
		query.Set("end_time", filter.EndTime)
	}

	var result Page[Transaction]
	if err := c.getJSON(ctx, transactionsPath, query, transactionTimeout, &result); err != nil {
		return Page[Transaction]{}, err
	}
	return result, nil
}

// FetchAllTransactions drains every punch record in [startTime, endTime].
func (c *Client) FetchAllTransactions(ctx context.Context, startTime, endTime string) ([]Transaction, error) {
	filter := TransactionFilter{StartTime: startTime, EndTime: endTime}
	return collectAll(ctx, func(ctx context.Context, page int) (Page[Transaction], error) {
		return c.ListTransactions(ctx, filter, page, fetchAllTransactionPageSize)
	})
}
