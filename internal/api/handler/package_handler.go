package handler

import (
	"net/http"
	"strconv"

	"gym_admin/internal/api/middleware"
	"gym_admin/internal/app/service"
	"gym_admin/internal/common"
	"gym_admin/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type PackageHandler struct {
	packageService *service.PackageService
}

func NewPackageHandler(ps *service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: ps}
}

func (h *PackageHandler) RegisterRoutes(r chi.Router) {
	// Reads are open to any authenticated role so the pricing flow works.
	r.Get("/", h.listPackages)
	r.Get("/{packageID}", h.getPackage)

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Post("/", h.createPackage)
		adminRouter.Put("/{packageID}", h.updatePackage)
		adminRouter.Delete("/{packageID}", h.deletePackage)
	})
}

func (h *PackageHandler) listPackages(w http.ResponseWriter, r *http.Request) {
	var isActive *bool
	if raw := r.URL.Query().Get("isActive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			common.RespondWithError(w, http.StatusBadRequest, "isActive must be true or false")
			return
		}
		isActive = &parsed
	}

	packages, err := h.packageService.ListPackages(r.Context(), isActive)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type packageListResponse struct {
		Packages []model.Package `json:"packages"`
	}
	common.RespondWithJSON(w, http.StatusOK, packageListResponse{Packages: packages})
}

func (h *PackageHandler) createPackage(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePackageRequest
	if err := common.DecodeJSONBody(r, &req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	pkg, err := h.packageService.CreatePackage(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, pkg)
}

func (h *PackageHandler) getPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.packageService.GetPackage(r.Context(), chi.URLParam(r, "packageID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, pkg)
}

func (h *PackageHandler) updatePackage(w http.ResponseWriter, r *http.Request) {
	var req service.UpdatePackageRequest
	if err := common.DecodeJSONBody(r, &req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	pkg, err := h.packageService.UpdatePackage(r.Context(), chi.URLParam(r, "packageID"), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, pkg)
}

func (h *PackageHandler) deletePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.packageService.DeletePackage(r.Context(), chi.URLParam(r, "packageID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "package deleted"})
}
