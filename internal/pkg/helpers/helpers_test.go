package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentrecords/internal/app/models/dto"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		query    string
		wantPage int
		wantSize int
	}{
		{"/", 1, 10},
		{"/?page=3&size=25", 3, 25},
		{"/?page=0&size=1000", 1, 10},
		{"/?page=x&size=-1", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			page, size := ParsePaginationParams(testContext(t, tt.query))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, uint64(20), limit)

	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, uint64(DefaultPageSize), limit)
}

func TestNewPaginationInfo(t *testing.T) {
	assert.Equal(t, dto.PaginationInfo{CurrentPage: 1, TotalPages: 1, PageSize: 10, TotalItems: 0}, NewPaginationInfo(0, 1, 10))
	assert.Equal(t, dto.PaginationInfo{CurrentPage: 2, TotalPages: 3, PageSize: 4, TotalItems: 9}, NewPaginationInfo(9, 2, 4))
}

func TestParseOptionalInt64Query(t *testing.T) {
	v, err := ParseOptionalInt64Query(testContext(t, "/?studentId=7"), "studentId")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, int64(7), *v)

	v, err = ParseOptionalInt64Query(testContext(t, "/"), "studentId")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = ParseOptionalInt64Query(testContext(t, "/?studentId=abc"), "studentId")
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDuration("3s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}
