package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/servimarket/servimarket/internal/pg"
	"github.com/servimarket/servimarket/internal/repo"
	"github.com/servimarket/servimarket/internal/service/reservationservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repositories := &repo.Repositories{
		UserRepo:        repo.NewMockUserRepo(ctrl),
		ServiceRepo:     repo.NewMockServiceRepo(ctrl),
		ReservationRepo: reservationservice.NewMockReservationRepo(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)

	services := New(repositories, txManager)

	assert.NotNil(t, services)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.ReservationService)
}
