// Package transport exposes the game over an HTTP JSON API.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/kingofthehill-client/internal/failure"
	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
)

const categoryNoSession model.ErrorCategory = "no_session"

// GameHandler serves the game API. acquire returns the running game and a func
// releasing it, or a nil Game while no session runs.
type GameHandler struct {
	acquire func() (Game, func())
	logger  *zap.Logger
	router  *mux.Router
}

// NewGameHandler builds the handler and its routes.
func NewGameHandler(acquire func() (Game, func()), logger *zap.Logger) *GameHandler {
	h := &GameHandler{
		acquire: acquire,
		logger:  logger.Named("game_handler"),
		router:  mux.NewRouter(),
	}
	api := h.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state", h.withGame(h.state)).Methods(http.MethodGet)
	api.HandleFunc("/refresh", h.withGame(h.refresh)).Methods(http.MethodPost)
	api.HandleFunc("/connect", h.withGame(h.connect)).Methods(http.MethodPost)
	api.HandleFunc("/disconnect", h.withGame(h.disconnect)).Methods(http.MethodPost)
	api.HandleFunc("/bid", h.withGame(h.bid)).Methods(http.MethodPost)
	api.HandleFunc("/withdraw", h.withGame(h.withdraw)).Methods(http.MethodPost)
	api.HandleFunc("/claims", h.withGame(h.claims)).Methods(http.MethodGet)
	return h
}

// Router exposes the router so callers can mount more routes.
func (h *GameHandler) Router() *mux.Router {
	return h.router
}

func (h *GameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *GameHandler) withGame(fn func(w http.ResponseWriter, r *http.Request, game Game)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, release := h.acquire()
		defer release()
		if game == nil {
			h.writeError(w, http.StatusServiceUnavailable, model.ErrorState{
				Category: categoryNoSession,
				Message:  "Reconnecting to the network.",
			})
			return
		}
		fn(w, r, game)
	}
}

type snapshotResponse struct {
	Leader               common.Address `json:"leader"`
	PrizeWei             string         `json:"prizeWei"`
	PrizeEth             string         `json:"prizeEth"`
	FeeRateBps           uint64         `json:"feeRateBps"`
	MinBidWei            string         `json:"minBidWei,omitempty"`
	MinBidEth            string         `json:"minBidEth,omitempty"`
	TotalClaims          string         `json:"totalClaims"`
	Account              common.Address `json:"account"`
	ClaimCount           string         `json:"claimCount"`
	PendingWithdrawalWei string         `json:"pendingWithdrawalWei"`
	PendingWithdrawalEth string         `json:"pendingWithdrawalEth"`
	FetchedAt            time.Time      `json:"fetchedAt"`
}

type stateResponse struct {
	Network      string                 `json:"network"`
	ChainID      uint64                 `json:"chainId"`
	Contract     common.Address         `json:"contract"`
	Loaded       bool                   `json:"loaded"`
	Refreshing   bool                   `json:"refreshing"`
	RetryAttempt int                    `json:"retryAttempt"`
	MaxRetries   int                    `json:"maxRetries"`
	Account      *common.Address        `json:"account,omitempty"`
	CanSign      bool                   `json:"canSign"`
	Snapshot     *snapshotResponse      `json:"snapshot,omitempty"`
	Error        *model.ErrorState      `json:"error,omitempty"`
	WalletError  *model.ErrorState      `json:"walletError,omitempty"`
	Submission   *model.OperationResult `json:"submission,omitempty"`
}

type claimResponse struct {
	PreviousKing common.Address `json:"previousKing"`
	NewKing      common.Address `json:"newKing"`
	AmountWei    string         `json:"amountWei"`
	AmountEth    string         `json:"amountEth"`
	BlockNumber  uint64         `json:"blockNumber"`
	TxHash       common.Hash    `json:"txHash"`
}

type bidRequest struct {
	AmountWei string `json:"amountWei"`
	AmountEth string `json:"amountEth"`
}

type errorResponse struct {
	Error model.ErrorState `json:"error"`
}

func newStateResponse(network model.Network, v model.View) stateResponse {
	resp := stateResponse{
		Network:      network.Name,
		ChainID:      network.ChainID,
		Contract:     network.ContractAddress,
		Loaded:       v.Loaded,
		Refreshing:   v.Refreshing,
		RetryAttempt: v.RetryAttempt,
		MaxRetries:   v.MaxRetries,
		CanSign:      v.Identity.CanSign(),
		Error:        v.Error,
		WalletError:  v.WalletError,
		Submission:   v.Submission,
	}
	if v.Identity.Connected() {
		account := v.Identity.Account
		resp.Account = &account
	}
	if snap := v.Snapshot; snap != nil {
		sr := &snapshotResponse{
			Leader:               snap.Leader,
			PrizeWei:             decimal(snap.Prize),
			PrizeEth:             model.FormatEther(snap.Prize),
			FeeRateBps:           snap.FeeRateBps,
			TotalClaims:          decimal(snap.TotalClaims),
			Account:              snap.Account,
			ClaimCount:           decimal(snap.ClaimCount),
			PendingWithdrawalWei: decimal(snap.PendingWithdrawal),
			PendingWithdrawalEth: model.FormatEther(snap.PendingWithdrawal),
			FetchedAt:            snap.FetchedAt,
		}
		if minBid, err := snap.MinBid(); err == nil {
			sr.MinBidWei = minBid.Dec()
			sr.MinBidEth = model.FormatEther(minBid)
		}
		resp.Snapshot = sr
	}
	return resp
}

func decimal(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}

func (h *GameHandler) state(w http.ResponseWriter, _ *http.Request, game Game) {
	h.writeJSON(w, http.StatusOK, newStateResponse(game.Network(), game.View()))
}

func (h *GameHandler) refresh(w http.ResponseWriter, r *http.Request, game Game) {
	// A failed refresh is part of the state, not a request failure.
	if err := game.Refresh(r.Context()); err != nil {
		h.logger.Debug("manual refresh failed", zap.Error(err))
	}
	h.writeJSON(w, http.StatusOK, newStateResponse(game.Network(), game.View()))
}

func (h *GameHandler) connect(w http.ResponseWriter, r *http.Request, game Game) {
	if err := game.Connect(r.Context()); err != nil {
		h.writeFailure(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newStateResponse(game.Network(), game.View()))
}

func (h *GameHandler) disconnect(w http.ResponseWriter, r *http.Request, game Game) {
	if err := game.Disconnect(r.Context()); err != nil {
		h.writeFailure(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newStateResponse(game.Network(), game.View()))
}

func (h *GameHandler) bid(w http.ResponseWriter, r *http.Request, game Game) {
	var req bidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, model.ErrorState{Category: model.CategoryValidation, Message: "Invalid request body."})
		return
	}
	amount, err := parseAmount(req)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	result, err := game.SubmitBid(r.Context(), amount)
	h.writeOperation(w, result, err)
}

func (h *GameHandler) withdraw(w http.ResponseWriter, r *http.Request, game Game) {
	result, err := game.SubmitWithdraw(r.Context())
	h.writeOperation(w, result, err)
}

func (h *GameHandler) claims(w http.ResponseWriter, r *http.Request, game Game) {
	var from uint64
	if raw := r.URL.Query().Get("from"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, model.ErrorState{Category: model.CategoryValidation, Message: "from must be a block number."})
			return
		}
		from = v
	}
	claims, err := game.Claims(r.Context(), from)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	out := make([]claimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, claimResponse{
			PreviousKing: c.PreviousKing,
			NewKing:      c.NewKing,
			AmountWei:    decimal(c.Amount),
			AmountEth:    model.FormatEther(c.Amount),
			BlockNumber:  c.BlockNumber,
			TxHash:       c.TxHash,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func parseAmount(req bidRequest) (*uint256.Int, error) {
	switch {
	case req.AmountWei != "":
		if !model.IsDigits(req.AmountWei) {
			return nil, failure.New(model.CategoryValidation, "amountWei must be a decimal integer.")
		}
		v, err := uint256.FromDecimal(req.AmountWei)
		if err != nil {
			return nil, failure.Wrap(model.CategoryValidation, "amountWei must be a decimal integer.", err)
		}
		return v, nil
	case req.AmountEth != "":
		v, err := model.ParseEther(req.AmountEth)
		if err != nil {
			return nil, failure.Wrap(model.CategoryValidation, "amountEth must be a decimal ether amount.", err)
		}
		return v, nil
	}
	return nil, failure.New(model.CategoryValidation, "Enter a bid amount.")
}

func (h *GameHandler) writeOperation(w http.ResponseWriter, result model.OperationResult, err error) {
	if err != nil {
		status := http.StatusBadGateway
		if cat, ok := failure.CategoryOf(err); ok {
			status = statusFor(cat)
		}
		h.writeJSON(w, status, result)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *GameHandler) writeFailure(w http.ResponseWriter, err error) {
	var fe *failure.Error
	if errors.As(err, &fe) {
		h.writeError(w, statusFor(fe.Category), fe.State())
		return
	}
	h.logger.Warn("request failed", zap.Error(err))
	h.writeError(w, http.StatusInternalServerError, model.ErrorState{Category: model.CategoryGeneric, Message: "An unknown error occurred."})
}

func statusFor(cat model.ErrorCategory) int {
	switch cat {
	case model.CategoryValidation:
		return http.StatusBadRequest
	case model.CategoryUnsigned, model.CategoryPleaseConnect:
		return http.StatusUnauthorized
	case model.CategoryRejected:
		return http.StatusForbidden
	case model.CategoryInFlight, model.CategoryConnectPending:
		return http.StatusConflict
	case model.CategoryWalletMissing, model.CategoryNotDeployed:
		return http.StatusNotFound
	case model.CategoryNetworkBusy:
		return http.StatusTooManyRequests
	case model.CategoryUnreachable, model.CategoryWrongNetwork:
		return http.StatusServiceUnavailable
	case model.CategoryInsufficientFunds:
		return http.StatusPaymentRequired
	}
	return http.StatusBadGateway
}

func (h *GameHandler) writeError(w http.ResponseWriter, status int, state model.ErrorState) {
	h.writeJSON(w, status, errorResponse{Error: state})
}

func (h *GameHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}
