package repo

import (
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	reservationrepo "github.com/servimarket/servimarket/internal/repo/reservation-repo"
	servicerepo "github.com/servimarket/servimarket/internal/repo/service-repo"
	userrepo "github.com/servimarket/servimarket/internal/repo/user-repo"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repositories := New(mockDB)

	assert.NotNil(t, repositories)
	assert.NotNil(t, repositories.UserRepo)
	assert.NotNil(t, repositories.ServiceRepo)
	assert.NotNil(t, repositories.ReservationRepo)

	assert.IsType(t, &userrepo.Repository{}, repositories.UserRepo)
	assert.IsType(t, &servicerepo.Repository{}, repositories.ServiceRepo)
	assert.IsType(t, &reservationrepo.Repository{}, repositories.ReservationRepo)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
