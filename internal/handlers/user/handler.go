package user

import (
	"net/http"

	"fauget/infras/otel"
	"fauget/internal/domains/user/model"
	"fauget/internal/domains/user/model/dto"
	"fauget/internal/domains/user/service"
	"fauget/shared/constant"
	gDto "fauget/shared/dto"
	"fauget/shared/failure"
	"fauget/shared/validator"
	"fauget/transport/http/middleware"
	"fauget/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.User
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.User, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey)
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Get("/profile", handler.GetProfile)
		routerGroup.Put("/profile", handler.UpdateProfile)
		routerGroup.Post("/profile/photo", handler.UploadProfilePhoto)
		routerGroup.Delete("/profile/photo", handler.DeleteProfilePhoto)
	})

	router.Route("/admin/users", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey)
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Get("/", handler.GetUsers)
		routerGroup.Get("/{id}", handler.GetUserByID)
		routerGroup.Put("/{id}/role", handler.UpdateRole)
		routerGroup.Put("/{id}/reset-password", handler.ResetPassword)
		routerGroup.Delete("/{id}", handler.DeleteUser)
	})
}

// GetProfile retrieves the authenticated user's profile.
// @Summary Get my profile
// @Description Retrieve the profile of the currently authenticated user.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} response.Base "User profile"
// @Failure 401 {object} response.Base
// @Failure 404 {object} response.Base
// @Router /api/users/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	profile, err := handler.service.Get(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, profile)
}

// UpdateProfile updates the authenticated user's profile.
// @Summary Update my profile
// @Description Update the profile of the currently authenticated user.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} response.Base "Profile updated successfully"
// @Failure 400 {object} response.Base
// @Failure 401 {object} response.Base
// @Router /api/users/profile [put]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.UpdateProfileRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateProfile(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile updated successfully for user " + userID)

	response.WithMessage(w, http.StatusOK, "Profile updated successfully")
}

// UploadProfilePhoto uploads the authenticated user's profile photo to S3.
// @Summary Upload profile photo
// @Description Upload a profile photo for the currently authenticated user and return its URL.
// @Tags User
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Photo file to upload"
// @Success 200 {object} response.Base "Profile photo uploaded successfully"
// @Failure 400 {object} response.Base
// @Failure 401 {object} response.Base
// @Router /api/users/profile/photo [post]
// @Security BearerAuth
func (handler *Handler) UploadProfilePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadProfilePhoto")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	url, err := handler.service.UploadProfilePhoto(ctx, userID, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload profile photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile photo uploaded successfully for user " + userID)

	response.WithJSONMessage(w, http.StatusOK, map[string]string{"url": url}, "Profile photo uploaded successfully")
}

// DeleteProfilePhoto removes the authenticated user's profile photo.
// @Summary Delete profile photo
// @Description Delete the profile photo of the currently authenticated user.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} response.Base "Profile photo deleted successfully"
// @Failure 400 {object} response.Base
// @Failure 401 {object} response.Base
// @Router /api/users/profile/photo [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProfilePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProfilePhoto")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	if err := handler.service.DeleteProfilePhoto(ctx, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete profile photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile photo deleted successfully for user " + userID)

	response.WithMessage(w, http.StatusOK, "Profile photo deleted successfully")
}

// GetUsers retrieves all users for the admin panel.
// @Summary Get all users
// @Description Retrieve all users with optional filtering and pagination. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param email query string false "Filter by email"
// @Param full_name query string false "Filter by full name"
// @Param role query string false "Filter by role"
// @Success 200 {object} response.Base "List of users"
// @Failure 403 {object} response.Base
// @Failure 500 {object} response.Base
// @Router /api/admin/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	email := r.URL.Query().Get(model.FieldEmail)
	fullName := r.URL.Query().Get(model.FieldFullName)
	role := r.URL.Query().Get(model.FieldRole)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	if fullName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFullName,
			Operator: gDto.FilterOperatorLike,
			Value:    fullName,
			Table:    model.TableName,
		})
	}

	if role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	users, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Users retrieved successfully")

	response.WithJSON(w, http.StatusOK, users)
}

// GetUserByID retrieves a user by their ID.
// @Summary Get a user by ID
// @Description Retrieve a user by their unique identifier. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Base "User details"
// @Failure 403 {object} response.Base
// @Failure 404 {object} response.Base
// @Router /api/admin/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	user, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User retrieved successfully")

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateRole changes a user's role.
// @Summary Update a user's role
// @Description Change the role of a user by their unique identifier. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateRoleRequest true "Update Role Request"
// @Success 200 {object} response.Base "Role updated successfully"
// @Failure 400 {object} response.Base
// @Failure 403 {object} response.Base
// @Failure 404 {object} response.Base
// @Router /api/admin/users/{id}/role [put]
// @Security BearerAuth
func (handler *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRole")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateRole(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update role")

		response.WithError(w, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Role updated successfully by user " + actor)

	response.WithMessage(w, http.StatusOK, "Role updated successfully")
}

// ResetPassword resets a user's password.
// @Summary Reset a user's password
// @Description Set a new password for a user by their unique identifier. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} response.Base "Password reset successfully"
// @Failure 400 {object} response.Base
// @Failure 403 {object} response.Base
// @Failure 404 {object} response.Base
// @Router /api/admin/users/{id}/reset-password [put]
// @Security BearerAuth
func (handler *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetPassword")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ResetPasswordRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ResetPassword(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset password")

		response.WithError(w, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Password reset successfully by user " + actor)

	response.WithMessage(w, http.StatusOK, "Password reset successfully")
}

// DeleteUser deletes a user by their ID.
// @Summary Delete a user
// @Description Delete a user by their unique identifier. Admin only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Base "User deleted successfully"
// @Failure 403 {object} response.Base
// @Failure 404 {object} response.Base
// @Router /api/admin/users/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(w, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("User deleted successfully by user " + actor)

	response.WithMessage(w, http.StatusOK, "User deleted successfully")
}
