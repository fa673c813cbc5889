// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MoleculeInsight Authors

package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/molecule-insight/insight-server/internal/service"
	"github.com/molecule-insight/insight-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUpdateProfile_ReissuesCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	updatedUser := models.User{UserID: 7, Email: "jane@example.com", Name: "Janet Doe"}
	gomock.InOrder(
		mocks.profile.EXPECT().UpdateName(gomock.Any(), int64(7), "Janet Doe").Return(updatedUser, nil),
		mocks.auth.EXPECT().CreateSessionToken(updatedUser).Return("fresh.jwt", nil),
	)

	req := withSession(httptest.NewRequest(http.MethodPatch, "/api/user/update", strings.NewReader(`{"name":"Janet Doe"}`)))
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "fresh.jwt", cookie.Value)
}

func TestUpdateProfile_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	mocks.profile.EXPECT().UpdateName(gomock.Any(), int64(7), "").Return(models.User{}, service.ErrInvalidDataProvided)

	req := withSession(httptest.NewRequest(http.MethodPatch, "/api/user/update", strings.NewReader(`{"name":""}`)))
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// avatarForm builds a multipart body with a single "avatar" file part.
func avatarForm(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="avatar.png"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadAvatar_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	updatedUser := models.User{UserID: 7, Avatar: "/uploads/avatars/new.png"}
	gomock.InOrder(
		mocks.profile.EXPECT().UploadAvatar(gomock.Any(), int64(7), "image/png", []byte("png-bytes")).
			Return(updatedUser, nil),
		mocks.auth.EXPECT().CreateSessionToken(updatedUser).Return("fresh.jwt", nil),
	)

	body, formContentType := avatarForm(t, "image/png", []byte("png-bytes"))
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/user/avatar", body))
	req.Header.Set("Content-Type", formContentType)
	rec := httptest.NewRecorder()

	h.uploadAvatar(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/uploads/avatars/new.png")
}

func TestUploadAvatar_UnsupportedType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	mocks.profile.EXPECT().UploadAvatar(gomock.Any(), int64(7), "image/svg+xml", gomock.Any()).
		Return(models.User{}, service.ErrUnsupportedAvatarType)

	body, formContentType := avatarForm(t, "image/svg+xml", []byte("<svg/>"))
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/user/avatar", body))
	req.Header.Set("Content-Type", formContentType)
	rec := httptest.NewRecorder()

	h.uploadAvatar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "jpg, png and gif")
}

func TestUploadAvatar_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "not-a-file"))
	require.NoError(t, writer.Close())

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/user/avatar", &buf))
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	h.uploadAvatar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// A body above the form cap is rejected during parsing; the service mock has
// no expectation, so the request must never reach it.
func TestUploadAvatar_BodyTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	body, formContentType := avatarForm(t, "image/png", bytes.Repeat([]byte("a"), maxAvatarFormSize+1))
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/user/avatar", body))
	req.Header.Set("Content-Type", formContentType)
	rec := httptest.NewRecorder()

	h.uploadAvatar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid multipart form")
}

func TestRemoveAvatar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	updatedUser := models.User{UserID: 7, Email: "jane@example.com"}
	gomock.InOrder(
		mocks.profile.EXPECT().RemoveAvatar(gomock.Any(), int64(7)).Return(updatedUser, nil),
		mocks.auth.EXPECT().CreateSessionToken(updatedUser).Return("fresh.jwt", nil),
	)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/user/avatar", nil))
	rec := httptest.NewRecorder()

	h.removeAvatar(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteAccount_ClearsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	mocks.profile.EXPECT().DeleteAccount(gomock.Any(), int64(7)).Return(nil)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/user/delete", nil))
	rec := httptest.NewRecorder()

	h.deleteAccount(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}
