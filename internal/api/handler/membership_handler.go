package handler

import (
	"net/http"

	"gym_admin/internal/api/middleware"
	"gym_admin/internal/app/service"
	"gym_admin/internal/common"
	"gym_admin/internal/domain/model"
	"gym_admin/internal/domain/repository"

	"github.com/go-chi/chi/v5"
)

type MembershipHandler struct {
	membershipService *service.MembershipService
}

func NewMembershipHandler(ms *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: ms}
}

func (h *MembershipHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listMemberships)
	r.Post("/", h.createMembership)
	r.Get("/{membershipID}", h.getMembership)
	r.Put("/{membershipID}", h.updateMembership)
	r.Delete("/{membershipID}", h.cancelMembership)
}

func (h *MembershipHandler) listMemberships(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	filters := repository.MembershipFilters{
		Status:   model.MembershipStatus(r.URL.Query().Get("status")),
		MemberID: r.URL.Query().Get("memberId"),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	memberships, total, err := h.membershipService.ListMemberships(r.Context(), filters)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type membershipListResponse struct {
		Memberships []model.Membership `json:"memberships"`
		Pagination  common.Pagination  `json:"pagination"`
	}
	common.RespondWithJSON(w, http.StatusOK, membershipListResponse{
		Memberships: memberships,
		Pagination:  common.NewPagination(page, limit, total),
	})
}

func (h *MembershipHandler) createMembership(w http.ResponseWriter, r *http.Request) {
	var req service.CreateMembershipRequest
	if err := common.DecodeJSONBody(r, &req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	membership, err := h.membershipService.CreateMembership(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, membership)
}

func (h *MembershipHandler) getMembership(w http.ResponseWriter, r *http.Request) {
	membership, err := h.membershipService.GetMembership(r.Context(), chi.URLParam(r, "membershipID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, membership)
}

func (h *MembershipHandler) updateMembership(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateMembershipRequest
	if err := common.DecodeJSONBody(r, &req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	membership, err := h.membershipService.UpdateMembership(r.Context(), chi.URLParam(r, "membershipID"), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, membership)
}

func (h *MembershipHandler) cancelMembership(w http.ResponseWriter, r *http.Request) {
	if _, err := h.membershipService.CancelMembership(r.Context(), chi.URLParam(r, "membershipID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "membership cancelled"})
}

// MyMembership serves the caller's own active membership. Mounted outside
// the /memberships admin subtree so regular users can reach it.
func (h *MembershipHandler) MyMembership(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	membership, err := h.membershipService.MyMembership(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type myMembershipResponse struct {
		Membership *model.Membership `json:"membership"`
	}
	common.RespondWithJSON(w, http.StatusOK, myMembershipResponse{Membership: membership})
}
