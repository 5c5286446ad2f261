package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fauget/config"
	"fauget/infras/otel/mocks"
	s3Mocks "fauget/infras/s3/mocks"
	userMocks "fauget/internal/domains/user/mocks"
	"fauget/internal/domains/user/model"
	"fauget/internal/domains/user/model/dto"
	"fauget/internal/domains/user/service"
	"fauget/shared/constant"
	"fauget/shared/failure"

	cacheMocks "fauget/shared/cache/mocks"
)

const photoBucket = "fauget-assets"

func newService(t *testing.T) (service.User, *userMocks.MockUser, *s3Mocks.MockS3, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.External.S3.BucketName = photoBucket

	// Async cache writes and invalidations may or may not run before the
	// test finishes.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mockOtel, mockS3), mockRepo, mockS3, mockCache
}

func validUser(id string) model.User {
	photo := "https://" + photoBucket + ".s3.amazonaws.com/profile-photos/" + id
	return model.User{
		ID:           id,
		Email:        "member@example.com",
		FullName:     "Test Member",
		Role:         constant.RoleUser,
		ProfilePhoto: &photo,
		Active:       true,
	}
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Email:    "new@example.com",
		Password: "password-123",
		FullName: "New Member",
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				assert.Equal(t, req.Email, user.Email)
				assert.Equal(t, constant.RoleUser, user.Role)
				assert.NotEqual(t, req.Password, user.Password)
				assert.True(t, user.Active)

				return nil
			})

		err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("profile is returned", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser("user-id-123"), nil)

		res, err := svc.Get(context.Background(), "user-id-123")

		assert.NoError(t, err)
		assert.Equal(t, "user-id-123", res.ID)
		assert.Equal(t, "Test Member", res.FullName)
		assert.NotNil(t, res.ProfilePhoto)
	})

	t.Run("user not found", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("empty update is rejected", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		err := svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{}, "user-id-123")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		fullName := "Renamed Member"

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, &fullName, fields[model.FieldFullName])

				return nil
			})

		err := svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{FullName: &fullName}, "user-id-123")

		assert.NoError(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		fullName := "Renamed Member"

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{FullName: &fullName}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_UpdateRole(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id-1")

	svc, mockRepo, _, _ := newService(t)

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, constant.RoleAdmin, fields[model.FieldRole])
			assert.Equal(t, "admin-id-1", fields[constant.FieldModifiedBy])

			return nil
		})

	err := svc.UpdateRole(ctx, dto.UpdateRoleRequest{Role: constant.RoleAdmin}, "user-id-123")

	assert.NoError(t, err)
}

func TestUserService_ResetPassword(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id-1")

	svc, mockRepo, _, _ := newService(t)

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			hashed, ok := fields[model.FieldPassword].(string)
			assert.True(t, ok)
			assert.NotEqual(t, "new-password-123", hashed)

			return nil
		})

	err := svc.ResetPassword(ctx, dto.ResetPasswordRequest{Password: "new-password-123"}, "user-id-123")

	assert.NoError(t, err)
}

func TestUserService_UploadProfilePhoto(t *testing.T) {
	t.Run("successful upload", func(t *testing.T) {
		svc, mockRepo, mockS3, _ := newService(t)

		uploadedURL := "https://" + photoBucket + ".s3.amazonaws.com/profile-photos/user-id-123"

		mockS3.EXPECT().
			UploadFile(gomock.Any(), photoBucket, gomock.Any(), gomock.Any(), gomock.Any(), "user-id-123").
			Return(uploadedURL, nil)
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		url, err := svc.UploadProfilePhoto(context.Background(), "user-id-123", nil, &multipart.FileHeader{Filename: "me.png"})

		assert.NoError(t, err)
		assert.Equal(t, uploadedURL, url)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, _, mockS3, _ := newService(t)

		mockS3.EXPECT().
			UploadFile(gomock.Any(), photoBucket, gomock.Any(), gomock.Any(), gomock.Any(), "user-id-123").
			Return("", errors.New("bucket unavailable"))

		_, err := svc.UploadProfilePhoto(context.Background(), "user-id-123", nil, &multipart.FileHeader{Filename: "me.png"})

		assert.Error(t, err)
	})
}

func TestUserService_DeleteProfilePhoto(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo, mockS3, _ := newService(t)

		user := validUser("user-id-123")

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		mockS3.EXPECT().GetObjectNameFromURL(photoBucket, *user.ProfilePhoto).Return("user-id-123")
		mockS3.EXPECT().DeleteFile(gomock.Any(), photoBucket, gomock.Any(), "user-id-123").Return(nil)
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.DeleteProfilePhoto(context.Background(), "user-id-123")

		assert.NoError(t, err)
	})

	t.Run("no photo to delete", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		user := validUser("user-id-123")
		user.ProfilePhoto = nil

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		err := svc.DeleteProfilePhoto(context.Background(), "user-id-123")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "user-id-123")

		assert.NoError(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
