package server

import (
	"net/http"

	"github.com/kjm-dev/ledger.entry-composer/pkg/ledger"
	"github.com/kjm-dev/ledger.entry-composer/pkg/lib-core-golang/router"
	"github.com/kjm-dev/ledger.entry-composer/pkg/version"
)

type updateEntryPayload struct {
	Description string `json:"description" validate:"required"`
}

type entryIDParams struct {
	ID int64 `validate:"min=1"`
}

// SetupRoutes will bind ledger endpoints to the given router
func SetupRoutes(r router.Router, svc Service) {
	r.Handle("GET", "/v1/healthcheck/ping", router.ToolkitHandlerFunc(
		func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit) error {
			return h.WriteJSON(map[string]string{
				"app": version.AppName,
				"msg": "pong",
			})
		}))

	r.Handle("GET", "/api/accounts", router.ToolkitHandlerFunc(
		func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit) error {
			accounts, err := svc.ListAccounts(req.Context())
			if err != nil {
				return err
			}
			return h.WriteJSON(accounts)
		}))

	r.Handle("POST", "/api/accounts", router.ToolkitHandlerFunc(
		func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit) error {
			var payload ledger.CreateAccountDTO
			if err := h.BindPayload(&payload); err != nil {
				return err
			}
			account, err := svc.CreateAccount(req.Context(), payload)
			if err != nil {
				return err
			}
			return h.WriteJSON(account, h.WithStatus(http.StatusCreated))
		}))

	r.Handle("GET", "/api/journal-entries", router.ToolkitHandlerFunc(
		func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit) error {
			entries, err := svc.ListEntries(req.Context())
			if err != nil {
				return err
			}
			return h.WriteJSON(entries)
		}))

	r.Handle("POST", "/api/journal-entries", router.ToolkitHandlerFunc(
		func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit) error {
			var payload ledger.CreateEntryDTO
			if err := h.BindPayload(&payload); err != nil {
				return err
			}
			id, err := svc.CreateEntry(req.Context(), payload)
			if err != nil {
				return err
			}
			return h.WriteJSON(map[string]int64{"id": id}, h.WithStatus(http.StatusCreated))
		}))

	r.Handle("GET", "/api/journal-entries/:id", router.ToolkitHandlerFunc(
		func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit) error {
			var params entryIDParams
			if err := h.BindParams().PathParam("id").Int64(&params.ID).Validate(&params); err != nil {
				return err
			}
			entry, err := svc.GetEntry(req.Context(), params.ID)
			if err != nil {
				return err
			}
			return h.WriteJSON(entry)
		}))

	r.Handle("PATCH", "/api/journal-entries/:id", router.ToolkitHandlerFunc(
		func(w http.ResponseWriter, req *http.Request, h router.HandlerToolkit) error {
			var params entryIDParams
			if err := h.BindParams().PathParam("id").Int64(&params.ID).Validate(&params); err != nil {
				return err
			}
			var payload updateEntryPayload
			if err := h.BindPayload(&payload); err != nil {
				return err
			}
			entry, err := svc.UpdateEntryDescription(req.Context(), params.ID, payload.Description)
			if err != nil {
				return err
			}
			return h.WriteJSON(entry)
		}))
}
