package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propsetu/estate-backend/internal/mocks"
	"github.com/propsetu/estate-backend/internal/registry"
)

func TestLoadReservedSlugs(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*mocks.MockFileSystem, *mocks.MockJSON)
		expectedErr  string
		validateFunc func(t *testing.T, reg registry.SlugRegistry)
	}{
		{
			name: "successful load with valid JSON",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("reserved_slugs.json").
					Return([]byte(`{"slugs": ["admin", "API", " blog "]}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			validateFunc: func(t *testing.T, reg registry.SlugRegistry) {
				assert.True(t, reg.IsReserved("admin"))
				assert.True(t, reg.IsReserved("Admin"))
				assert.True(t, reg.IsReserved("api"))
				assert.True(t, reg.IsReserved("blog"))
				assert.False(t, reg.IsReserved("luxury-villa-gurgaon"))
			},
		},
		{
			name: "successful load with empty list",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("reserved_slugs.json").
					Return([]byte(`{"slugs": []}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			validateFunc: func(t *testing.T, reg registry.SlugRegistry) {
				assert.False(t, reg.IsReserved("admin"))
			},
		},
		{
			name: "file read error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("reserved_slugs.json").
					Return(nil, assert.AnError)
			},
			expectedErr: "failed to read reserved slugs file",
		},
		{
			name: "invalid JSON",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("reserved_slugs.json").
					Return([]byte(`not json`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			expectedErr: "failed to parse reserved slugs JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			mockJSON := mocks.NewMockJSON(ctrl)
			tt.setupMocks(mockFS, mockJSON)

			reg, err := registry.LoadReservedSlugs("reserved_slugs.json", mockFS, mockJSON)
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			tt.validateFunc(t, reg)
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title      string
		propertyID uint64
		expected   string
	}{
		{"Luxury Villa, Gurgaon", 0, "luxury-villa-gurgaon"},
		{"  2 Acre  Agricultural Land  ", 0, "2-acre-agricultural-land"},
		{"Plot #42 (Sector 18)", 0, "plot-42-sector-18"},
		{"हवेली Haveli", 0, "haveli"},
		{"!!!", 9, "property-9"},
		{"", 12, "property-12"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, registry.Slugify(tt.title, tt.propertyID))
		})
	}
}

func TestSlugifyTruncatesLongTitles(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "very "
	}
	slug := registry.Slugify(long+"long title", 1)
	assert.LessOrEqual(t, len(slug), 80)
	assert.NotEqual(t, "-", slug[len(slug)-1:])
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "luxury-villa-2", registry.WithSuffix("luxury-villa", 2))
}
