package handler

import (
	"net/http"
	"strconv"

	"gym_admin/internal/app/service"
	"gym_admin/internal/common"
	"gym_admin/internal/domain/model"
	"gym_admin/internal/domain/repository"

	"github.com/go-chi/chi/v5"
)

type MemberHandler struct {
	memberService *service.MemberService
}

func NewMemberHandler(ms *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: ms}
}

func (h *MemberHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listMembers)
	r.Post("/", h.createMember)
	r.Get("/{memberID}", h.getMember)
	r.Put("/{memberID}", h.updateMember)
	r.Delete("/{memberID}", h.deleteMember)
}

func (h *MemberHandler) listMembers(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	filters := repository.MemberFilters{
		Search: r.URL.Query().Get("search"),
		Status: model.MemberStatus(r.URL.Query().Get("status")),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	members, total, err := h.memberService.ListMembers(r.Context(), filters)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type memberListResponse struct {
		Members    []model.Member    `json:"members"`
		Pagination common.Pagination `json:"pagination"`
	}
	common.RespondWithJSON(w, http.StatusOK, memberListResponse{
		Members:    members,
		Pagination: common.NewPagination(page, limit, total),
	})
}

func (h *MemberHandler) createMember(w http.ResponseWriter, r *http.Request) {
	var req service.CreateMemberRequest
	if err := common.DecodeJSONBody(r, &req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.memberService.CreateMember(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) getMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.memberService.GetMember(r.Context(), chi.URLParam(r, "memberID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) updateMember(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateMemberRequest
	if err := common.DecodeJSONBody(r, &req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.memberService.UpdateMember(r.Context(), chi.URLParam(r, "memberID"), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) deleteMember(w http.ResponseWriter, r *http.Request) {
	if err := h.memberService.DeleteMember(r.Context(), chi.URLParam(r, "memberID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "member deleted"})
}

// pageParams parses page/limit query params with the list defaults.
func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
