package nested_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jask/profilescroll/internal/nested"
	"github.com/jask/profilescroll/internal/nested/mocks"
)

func TestRegistrySubscribesOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	outer := mocks.NewMockSurface(ctrl)
	inner := mocks.NewMockSurface(ctrl)
	geometry := mocks.NewMockGeometryProvider(ctrl)
	geometry.EXPECT().FullHeight().Return(200.0).AnyTimes()
	geometry.EXPECT().CollapsedVisibleHeight().Return(50.0).AnyTimes()

	outer.EXPECT().Subscribe(gomock.Any()).Return(nested.Handle(1)).Times(1)
	var onChange nested.ChangeFunc
	inner.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn nested.ChangeFunc) nested.Handle {
		onChange = fn
		return nested.Handle(7)
	}).Times(1)

	r := nested.NewRegistry(nested.NewCoordinator(outer, geometry))
	assert.Equal(t, 1, r.Register(inner))
	assert.Equal(t, 0, r.Register(inner))
	require.NotNil(t, onChange)

	// One change event yields exactly one reconciliation.
	outer.EXPECT().Offset().Return(nested.Point{}).Times(1)
	outer.EXPECT().SetOffset(nested.Point{Y: 20}).Times(1)
	inner.EXPECT().SetOffset(nested.Point{Y: 5}).Times(1)
	onChange(nested.Point{Y: 5}, nested.Point{Y: 25})

	inner.EXPECT().Unsubscribe(nested.Handle(7)).Times(1)
	outer.EXPECT().Unsubscribe(nested.Handle(1)).Times(1)
	r.Teardown()
	r.Teardown()

	// A queued event arriving after teardown touches nothing.
	onChange(nested.Point{Y: 5}, nested.Point{Y: 25})
}

func TestCoordinatorWithMockGeometry(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	geometry := mocks.NewMockGeometryProvider(ctrl)
	geometry.EXPECT().FullHeight().Return(8.0).AnyTimes()
	geometry.EXPECT().CollapsedVisibleHeight().Return(2.0).AnyTimes()

	outer := mocks.NewMockSurface(ctrl)
	c := nested.NewCoordinator(outer, geometry)
	assert.Equal(t, 6.0, c.CollapseRange())

	outer.EXPECT().Offset().Return(nested.Point{X: 3, Y: 1})
	outer.EXPECT().SetOffset(nested.Point{X: 3, Y: 6})
	require.NoError(t, c.SetOuterOffset(9))
}
