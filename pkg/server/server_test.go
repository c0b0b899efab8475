package server

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bxcodec/faker/v3"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/kjm-dev/ledger.entry-composer/pkg/dal"
	"github.com/kjm-dev/ledger.entry-composer/pkg/ledger"
	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/router"
)

type testServer struct {
	router router.Router
	done   func()
}

func newTestServer(t *testing.T) *testServer {
	db, err := sql.Open("sqlite3", ":memory:")
	if !assert.NoError(t, err) {
		panic(err)
	}
	storage, err := dal.NewSQLStorage(dal.WithSQLDb(db))
	if !assert.NoError(t, err) {
		panic(err)
	}
	if err := storage.Setup(context.Background()); !assert.NoError(t, err) {
		panic(err)
	}
	r := router.CreateRouter()
	SetupRoutes(r, NewService(WithStorage(storage)))
	return &testServer{router: r, done: func() { db.Close() }}
}

func (s *testServer) do(t *testing.T, method string, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); !assert.NoError(t, err) {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, receiver interface{}) bool {
	return assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), receiver))
}

func (s *testServer) createAccount(t *testing.T, code string, name string) ledger.AccountDTO {
	res := s.do(t, "POST", "/api/accounts", ledger.CreateAccountDTO{Code: code, Name: name})
	if !assert.Equal(t, http.StatusCreated, res.Code, res.Body.String()) {
		panic(res.Body.String())
	}
	var account ledger.AccountDTO
	decodeBody(t, res, &account)
	return account
}

func balancedEntry(accountIDs ...int64) ledger.CreateEntryDTO {
	return ledger.CreateEntryDTO{
		EntryDate:   "2024-03-01",
		Description: faker.Sentence(),
		Lines: []ledger.LineDTO{
			{DcType: ledger.Debit, Amount: 10000, AccountID: accountIDs[0]},
			{DcType: ledger.Credit, Amount: 10000, AccountID: accountIDs[1]},
		},
	}
}

func Test_Server_Healthcheck(t *testing.T) {
	s := newTestServer(t)
	defer s.done()
	res := s.do(t, "GET", "/v1/healthcheck/ping", nil)
	assert.Equal(t, http.StatusOK, res.Code)
	var body map[string]string
	if decodeBody(t, res, &body) {
		assert.Equal(t, "pong", body["msg"])
	}
}

func Test_Server_Accounts(t *testing.T) {
	type tcFn func(*testing.T, *testServer)
	tests := []func() (string, tcFn){
		func() (string, tcFn) {
			return "create and list accounts", func(t *testing.T, s *testServer) {
				cash := s.createAccount(t, "101", "Cash")
				payable := s.createAccount(t, "201", "Payable")
				assert.NotZero(t, cash.ID)

				res := s.do(t, "GET", "/api/accounts", nil)
				assert.Equal(t, http.StatusOK, res.Code)
				var accounts []ledger.AccountDTO
				if decodeBody(t, res, &accounts) {
					assert.Equal(t, []ledger.AccountDTO{cash, payable}, accounts)
				}
			}
		},
		func() (string, tcFn) {
			return "reject duplicate code", func(t *testing.T, s *testServer) {
				s.createAccount(t, "101", "Cash")
				res := s.do(t, "POST", "/api/accounts", ledger.CreateAccountDTO{Code: "101", Name: "Other"})
				assert.Equal(t, http.StatusBadRequest, res.Code)
				var body map[string]interface{}
				if decodeBody(t, res, &body) {
					assert.Equal(t, "Account code already exists: 101", body["message"])
					assert.Equal(t, float64(400), body["status"])
					assert.Equal(t, "/api/accounts", body["path"])
				}
			}
		},
		func() (string, tcFn) {
			return "reject blank payload", func(t *testing.T, s *testServer) {
				res := s.do(t, "POST", "/api/accounts", map[string]string{"code": ""})
				assert.Equal(t, http.StatusBadRequest, res.Code)
			}
		},
	}
	for _, tt := range tests {
		name, tt := tt()
		t.Run(name, func(t *testing.T) {
			s := newTestServer(t)
			defer s.done()
			tt(t, s)
		})
	}
}

func Test_Server_CreateEntry(t *testing.T) {
	type tcFn func(*testing.T, *testServer)
	tests := []func() (string, tcFn){
		func() (string, tcFn) {
			return "create balanced entry and fetch it back", func(t *testing.T, s *testServer) {
				cash := s.createAccount(t, "101", "Cash")
				payable := s.createAccount(t, "201", "Payable")
				entry := balancedEntry(cash.ID, payable.ID)

				res := s.do(t, "POST", "/api/journal-entries", entry)
				if !assert.Equal(t, http.StatusCreated, res.Code, res.Body.String()) {
					return
				}
				var created map[string]int64
				if !decodeBody(t, res, &created) {
					return
				}
				assert.NotZero(t, created["id"])

				res = s.do(t, "GET", fmt.Sprintf("/api/journal-entries/%v", created["id"]), nil)
				assert.Equal(t, http.StatusOK, res.Code)
				var got ledger.EntryDetailDTO
				if !decodeBody(t, res, &got) {
					return
				}
				assert.Equal(t, created["id"], got.ID)
				assert.Equal(t, []ledger.EntryLineDTO{
					{DcType: ledger.Debit, Amount: 10000, AccountID: cash.ID, AccountCode: "101", AccountName: "Cash"},
					{DcType: ledger.Credit, Amount: 10000, AccountID: payable.ID, AccountCode: "201", AccountName: "Payable"},
				}, got.Lines)
			}
		},
		func() (string, tcFn) {
			return "reject unbalanced entry", func(t *testing.T, s *testServer) {
				cash := s.createAccount(t, "101", "Cash")
				payable := s.createAccount(t, "201", "Payable")
				entry := balancedEntry(cash.ID, payable.ID)
				entry.Lines[1].Amount = 7000

				res := s.do(t, "POST", "/api/journal-entries", entry)
				assert.Equal(t, http.StatusBadRequest, res.Code)
				var body map[string]interface{}
				if decodeBody(t, res, &body) {
					assert.Equal(t, "Debit sum must equal credit sum", body["message"])
				}
			}
		},
		func() (string, tcFn) {
			return "reject unknown dc type", func(t *testing.T, s *testServer) {
				cash := s.createAccount(t, "101", "Cash")
				payable := s.createAccount(t, "201", "Payable")
				entry := balancedEntry(cash.ID, payable.ID)
				entry.Lines[0].DcType = "BOTH"

				res := s.do(t, "POST", "/api/journal-entries", entry)
				assert.Equal(t, http.StatusBadRequest, res.Code)
				var body map[string]interface{}
				if decodeBody(t, res, &body) {
					assert.Equal(t, "dcType must be DEBIT or CREDIT", body["message"])
				}
			}
		},
		func() (string, tcFn) {
			return "reject unknown account", func(t *testing.T, s *testServer) {
				cash := s.createAccount(t, "101", "Cash")
				entry := balancedEntry(cash.ID, 4242)

				res := s.do(t, "POST", "/api/journal-entries", entry)
				assert.Equal(t, http.StatusNotFound, res.Code)
				var body map[string]interface{}
				if decodeBody(t, res, &body) {
					assert.Equal(t, "Account not found: 4242", body["message"])
				}
			}
		},
	}
	for _, tt := range tests {
		name, tt := tt()
		t.Run(name, func(t *testing.T) {
			s := newTestServer(t)
			defer s.done()
			tt(t, s)
		})
	}
}

func Test_Server_Entries(t *testing.T) {
	type tcFn func(*testing.T, *testServer)
	tests := []func() (string, tcFn){
		func() (string, tcFn) {
			return "respond 404 for unknown entry", func(t *testing.T, s *testServer) {
				res := s.do(t, "GET", "/api/journal-entries/999", nil)
				assert.Equal(t, http.StatusNotFound, res.Code)
				var body map[string]interface{}
				if decodeBody(t, res, &body) {
					assert.Equal(t, "JournalEntry not found: 999", body["message"])
					assert.Equal(t, "/api/journal-entries/999", body["path"])
				}
			}
		},
		func() (string, tcFn) {
			return "reject non numeric entry id", func(t *testing.T, s *testServer) {
				res := s.do(t, "GET", "/api/journal-entries/nope", nil)
				assert.Equal(t, http.StatusBadRequest, res.Code)
			}
		},
		func() (string, tcFn) {
			return "list entry summaries with side totals", func(t *testing.T, s *testServer) {
				cash := s.createAccount(t, "101", "Cash")
				payable := s.createAccount(t, "201", "Payable")
				res := s.do(t, "POST", "/api/journal-entries", balancedEntry(cash.ID, payable.ID))
				if !assert.Equal(t, http.StatusCreated, res.Code) {
					return
				}

				res = s.do(t, "GET", "/api/journal-entries", nil)
				assert.Equal(t, http.StatusOK, res.Code)
				var entries []ledger.EntrySummaryDTO
				if !decodeBody(t, res, &entries) {
					return
				}
				if assert.Len(t, entries, 1) {
					assert.Equal(t, float64(10000), entries[0].DebitTotal)
					assert.Equal(t, float64(10000), entries[0].CreditTotal)
				}
			}
		},
		func() (string, tcFn) {
			return "update entry description", func(t *testing.T, s *testServer) {
				cash := s.createAccount(t, "101", "Cash")
				payable := s.createAccount(t, "201", "Payable")
				res := s.do(t, "POST", "/api/journal-entries", balancedEntry(cash.ID, payable.ID))
				if !assert.Equal(t, http.StatusCreated, res.Code) {
					return
				}
				var created map[string]int64
				if !decodeBody(t, res, &created) {
					return
				}

				newDesc := faker.Sentence()
				res = s.do(t, "PATCH", fmt.Sprintf("/api/journal-entries/%v", created["id"]),
					map[string]string{"description": newDesc})
				assert.Equal(t, http.StatusOK, res.Code, res.Body.String())
				var got ledger.EntryDetailDTO
				if decodeBody(t, res, &got) {
					assert.Equal(t, newDesc, got.Description)
				}
			}
		},
		func() (string, tcFn) {
			return "respond 404 updating unknown entry", func(t *testing.T, s *testServer) {
				res := s.do(t, "PATCH", "/api/journal-entries/999",
					map[string]string{"description": "new"})
				assert.Equal(t, http.StatusNotFound, res.Code)
			}
		},
	}
	for _, tt := range tests {
		name, tt := tt()
		t.Run(name, func(t *testing.T) {
			s := newTestServer(t)
			defer s.done()
			tt(t, s)
		})
	}
}
