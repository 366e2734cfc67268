package user_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nc-news/internal/domain/entity"
	"nc-news/internal/handler/http/user"
	"nc-news/internal/repository"
	userUC "nc-news/internal/usecase/user"
)

type stubRepo struct {
	users []*entity.User
	err   error
}

func (s *stubRepo) List(context.Context) ([]*entity.User, error) {
	return s.users, s.err
}

func (s *stubRepo) Get(_ context.Context, username string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repository.NotFound("UserRepo.Get")
}

var users = []*entity.User{
	{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
	{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
}

func serve(repo *stubRepo, target string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	user.Register(mux, userUC.Service{Repo: repo})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestListHandler(t *testing.T) {
	rr := serve(&stubRepo{users: users}, "/api/users")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"username":"butter_bridge"`)
	assert.Contains(t, rr.Body.String(), `"avatar_url":`)
}

func TestGetHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		rr := serve(&stubRepo{users: users}, "/api/users/lurker")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"user":{
			"username":"lurker",
			"name":"do_nothing",
			"avatar_url":"https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"
		}}`, rr.Body.String())
	})

	t.Run("absent", func(t *testing.T) {
		rr := serve(&stubRepo{users: users}, "/api/users/nobody")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"user not found"}`, rr.Body.String())
	})

	t.Run("storage failure is masked", func(t *testing.T) {
		rr := serve(&stubRepo{err: errors.New("pq: password authentication failed")}, "/api/users/lurker")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
	})
}
