package integrationtests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"shareit/services/server/helpers"

	"github.com/stretchr/testify/require"
)

// User endpoints through the gateway
func TestUserAPI(t *testing.T) {
	env := SetupTestEnv(t)

	ann := env.CreateUser(t, "ann")
	bob := env.CreateUser(t, "bob")
	require.NotEqual(t, ann, bob)

	tests := []struct {
		name       string
		method     string
		url        string
		body       any
		wantStatus int
		wantMsg    string
	}{
		{"Duplicate_Email", http.MethodPost, "/users", map[string]string{"name": "Ann2", "email": "ann@example.com"}, http.StatusConflict, "email already in use"},
		{"Invalid_Email", http.MethodPost, "/users", map[string]string{"name": "Cid", "email": "cid"}, http.StatusBadRequest, "invalid request payload"},
		{"Blank_Name", http.MethodPost, "/users", map[string]string{"name": " ", "email": "cid@example.com"}, http.StatusBadRequest, "invalid request payload"},
		{"Patch_To_Taken_Email", http.MethodPatch, fmt.Sprintf("/users/%d", bob), map[string]string{"email": "ann@example.com"}, http.StatusConflict, "email already in use"},
		{"Patch_Own_Email", http.MethodPatch, fmt.Sprintf("/users/%d", ann), map[string]string{"email": "ann@example.com"}, http.StatusOK, "user updated successfully"},
		{"Get_Missing", http.MethodGet, "/users/999", nil, http.StatusNotFound, "user not found"},
		{"Delete_Missing", http.MethodDelete, "/users/999", nil, http.StatusNotFound, "user not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := env.Do(t, tt.method, tt.url, 0, tt.body)
			require.Equal(t, tt.wantStatus, status)
			require.Equal(t, tt.wantMsg, resp.Message)
		})
	}

	t.Run("Patch_Name_Keeps_Email", func(t *testing.T) {
		var got helpers.UserResponse
		env.MustDo(t, http.StatusOK, http.MethodPatch, fmt.Sprintf("/users/%d", bob), 0, map[string]string{"name": "Robert"}, &got)
		require.Equal(t, helpers.UserResponse{ID: bob, Name: "Robert", Email: "bob@example.com"}, got)
	})

	t.Run("List_And_Delete", func(t *testing.T) {
		var users []helpers.UserResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, "/users", 0, nil, &users)
		require.Len(t, users, 2)

		env.MustDo(t, http.StatusOK, http.MethodDelete, fmt.Sprintf("/users/%d", bob), 0, nil, nil)
		env.MustDo(t, http.StatusNotFound, http.MethodGet, fmt.Sprintf("/users/%d", bob), 0, nil, nil)

		// The freed email can be registered again.
		env.MustDo(t, http.StatusCreated, http.MethodPost, "/users", 0,
			map[string]string{"name": "Bob", "email": "bob@example.com"}, nil)
	})
}

// Items, search and ownership rules
func TestItemAPI(t *testing.T) {
	env := SetupTestEnv(t)

	owner := env.CreateUser(t, "owner")
	other := env.CreateUser(t, "other")
	drill := env.CreateItem(t, owner, "Cordless Drill", "18V with two batteries")
	env.CreateItem(t, owner, "Saw", "Hand saw")

	t.Run("Create_For_Unknown_User", func(t *testing.T) {
		env.MustDo(t, http.StatusNotFound, http.MethodPost, "/items", 999,
			map[string]any{"name": "X", "description": "Y", "available": true}, nil)
	})

	t.Run("Create_Without_Header", func(t *testing.T) {
		env.MustDo(t, http.StatusBadRequest, http.MethodPost, "/items", 0,
			map[string]any{"name": "X", "description": "Y", "available": true}, nil)
	})

	t.Run("Search_Case_Insensitive", func(t *testing.T) {
		var found []helpers.ItemResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, "/items/search?text=dRiLl", other, nil, &found)
		require.Len(t, found, 1)
		require.Equal(t, drill, found[0].ID)

		env.MustDo(t, http.StatusOK, http.MethodGet, "/items/search?text=BATTERIES", other, nil, &found)
		require.Len(t, found, 1)
	})

	t.Run("Search_Blank_Text", func(t *testing.T) {
		var found []helpers.ItemResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, "/items/search?text=", other, nil, &found)
		require.NotNil(t, found)
		require.Empty(t, found)
	})

	t.Run("Update_By_Stranger", func(t *testing.T) {
		env.MustDo(t, http.StatusBadRequest, http.MethodPatch, fmt.Sprintf("/items/%d", drill), other,
			map[string]any{"available": false}, nil)
	})

	t.Run("Owner_Hides_Item_From_Search", func(t *testing.T) {
		var updated helpers.ItemResponse
		env.MustDo(t, http.StatusOK, http.MethodPatch, fmt.Sprintf("/items/%d", drill), owner,
			map[string]any{"available": false}, &updated)
		require.False(t, updated.Available)
		require.Equal(t, "Cordless Drill", updated.Name)

		var found []helpers.ItemResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, "/items/search?text=drill", other, nil, &found)
		require.Empty(t, found)
	})

	t.Run("List_Owner_Items", func(t *testing.T) {
		var items []helpers.ItemDetailsResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, "/items", owner, nil, &items)
		require.Len(t, items, 2)

		env.MustDo(t, http.StatusOK, http.MethodGet, "/items", other, nil, &items)
		require.Empty(t, items)
	})

	t.Run("Delete_Is_Idempotent", func(t *testing.T) {
		env.MustDo(t, http.StatusOK, http.MethodDelete, fmt.Sprintf("/items/%d", drill), owner, nil, nil)
		env.MustDo(t, http.StatusOK, http.MethodDelete, fmt.Sprintf("/items/%d", drill), owner, nil, nil)
		env.MustDo(t, http.StatusNotFound, http.MethodGet, fmt.Sprintf("/items/%d", drill), owner, nil, nil)
	})
}

// The booking lifecycle from request to comment
func TestBookingLifecycle(t *testing.T) {
	env := SetupTestEnv(t)

	owner := env.CreateUser(t, "owner")
	booker := env.CreateUser(t, "booker")
	stranger := env.CreateUser(t, "stranger")
	drill := env.CreateItem(t, owner, "Drill", "Cordless")

	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	end := start.Add(2 * time.Hour)
	bookingID := env.CreateBooking(t, booker, drill, start, end)

	t.Run("Waiting_After_Create", func(t *testing.T) {
		var b helpers.BookingResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, fmt.Sprintf("/bookings/%d", bookingID), booker, nil, &b)
		require.Equal(t, "WAITING", b.Status)
		require.Equal(t, drill, b.Item.ID)
		require.Equal(t, booker, b.Booker.ID)
		require.Equal(t, start.Format(time.RFC3339), b.Start)
	})

	t.Run("Stranger_Cannot_See", func(t *testing.T) {
		env.MustDo(t, http.StatusBadRequest, http.MethodGet, fmt.Sprintf("/bookings/%d", bookingID), stranger, nil, nil)
	})

	t.Run("Booker_Cannot_Approve", func(t *testing.T) {
		env.MustDo(t, http.StatusBadRequest, http.MethodPatch, fmt.Sprintf("/bookings/%d?approved=true", bookingID), booker, nil, nil)
	})

	t.Run("Owner_Approves_Once", func(t *testing.T) {
		var b helpers.BookingResponse
		env.MustDo(t, http.StatusOK, http.MethodPatch, fmt.Sprintf("/bookings/%d?approved=true", bookingID), owner, nil, &b)
		require.Equal(t, "APPROVED", b.Status)

		status, resp := env.Do(t, http.MethodPatch, fmt.Sprintf("/bookings/%d?approved=false", bookingID), owner, nil)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "booking status has already been decided", resp.Message)
	})

	t.Run("Owner_Sees_Next_Booking", func(t *testing.T) {
		var details helpers.ItemDetailsResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, fmt.Sprintf("/items/%d", drill), owner, nil, &details)
		require.Nil(t, details.LastBooking)
		require.NotNil(t, details.NextBooking)
		require.Equal(t, start.Format(time.RFC3339), *details.NextBooking)

		env.MustDo(t, http.StatusOK, http.MethodGet, fmt.Sprintf("/items/%d", drill), booker, nil, &details)
		require.Nil(t, details.NextBooking)
	})

	t.Run("Comment_Before_Finish", func(t *testing.T) {
		env.MustDo(t, http.StatusBadRequest, http.MethodPost, fmt.Sprintf("/items/%d/comment", drill), booker,
			map[string]string{"text": "too early"}, nil)
	})

	t.Run("Filters_Before_Start", func(t *testing.T) {
		var list []helpers.BookingResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, "/bookings?state=FUTURE", booker, nil, &list)
		require.Len(t, list, 1)
		env.MustDo(t, http.StatusOK, http.MethodGet, "/bookings/owner?state=future", owner, nil, &list)
		require.Len(t, list, 1)
		env.MustDo(t, http.StatusOK, http.MethodGet, "/bookings?state=PAST", booker, nil, &list)
		require.Empty(t, list)
		env.MustDo(t, http.StatusOK, http.MethodGet, "/bookings/owner", stranger, nil, &list)
		require.Empty(t, list)
	})

	t.Run("Filters_During", func(t *testing.T) {
		env.clock.Advance(90 * time.Minute)

		var list []helpers.BookingResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, "/bookings?state=CURRENT", booker, nil, &list)
		require.Len(t, list, 1)
		env.MustDo(t, http.StatusOK, http.MethodGet, "/bookings?state=FUTURE", booker, nil, &list)
		require.Empty(t, list)
	})

	t.Run("Comment_After_Finish", func(t *testing.T) {
		env.clock.Advance(24 * time.Hour)

		var list []helpers.BookingResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, "/bookings/owner?state=PAST", owner, nil, &list)
		require.Len(t, list, 1)

		var comment helpers.CommentResponse
		env.MustDo(t, http.StatusCreated, http.MethodPost, fmt.Sprintf("/items/%d/comment", drill), booker,
			map[string]string{"text": "works great"}, &comment)
		require.Equal(t, "booker", comment.AuthorName)
		require.Equal(t, "works great", comment.Text)

		env.MustDo(t, http.StatusBadRequest, http.MethodPost, fmt.Sprintf("/items/%d/comment", drill), stranger,
			map[string]string{"text": "never used it"}, nil)

		var details helpers.ItemDetailsResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, fmt.Sprintf("/items/%d", drill), owner, nil, &details)
		require.NotNil(t, details.LastBooking)
		require.Equal(t, end.Format(time.RFC3339), *details.LastBooking)
		require.Len(t, details.Comments, 1)
	})

	t.Run("Rejected_Filter", func(t *testing.T) {
		second := env.CreateBooking(t, stranger, drill, time.Now().Add(time.Hour), time.Now().Add(3*time.Hour))
		env.MustDo(t, http.StatusOK, http.MethodPatch, fmt.Sprintf("/bookings/%d?approved=false", second), owner, nil, nil)

		var list []helpers.BookingResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, "/bookings/owner?state=REJECTED", owner, nil, &list)
		require.Len(t, list, 1)
		require.Equal(t, second, list[0].ID)
		env.MustDo(t, http.StatusOK, http.MethodGet, "/bookings/owner?state=WAITING", owner, nil, &list)
		require.Empty(t, list)
	})

	t.Run("Unknown_State", func(t *testing.T) {
		status, resp := env.Do(t, http.MethodGet, "/bookings?state=UNSUPPORTED_STATUS", booker, nil)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "invalid request parameters", resp.Message)
	})
}

func TestBookingRules(t *testing.T) {
	env := SetupTestEnv(t)

	owner := env.CreateUser(t, "owner")
	booker := env.CreateUser(t, "booker")
	drill := env.CreateItem(t, owner, "Drill", "Cordless")

	start := time.Now().Add(time.Hour)
	end := start.Add(time.Hour)

	t.Run("Unknown_Item", func(t *testing.T) {
		env.MustDo(t, http.StatusNotFound, http.MethodPost, "/bookings", booker,
			map[string]any{"itemId": 999, "start": start, "end": end}, nil)
	})

	t.Run("Unknown_Booker", func(t *testing.T) {
		env.MustDo(t, http.StatusNotFound, http.MethodPost, "/bookings", 999,
			map[string]any{"itemId": drill, "start": start, "end": end}, nil)
	})

	t.Run("Unavailable_Item", func(t *testing.T) {
		env.MustDo(t, http.StatusOK, http.MethodPatch, fmt.Sprintf("/items/%d", drill), owner,
			map[string]any{"available": false}, nil)
		status, resp := env.Do(t, http.MethodPost, "/bookings", booker,
			map[string]any{"itemId": drill, "start": start, "end": end})
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "item is not available", resp.Message)
	})

	t.Run("Missing_Booking", func(t *testing.T) {
		env.MustDo(t, http.StatusNotFound, http.MethodGet, "/bookings/999", booker, nil, nil)
	})

	t.Run("Paging", func(t *testing.T) {
		env.MustDo(t, http.StatusOK, http.MethodPatch, fmt.Sprintf("/items/%d", drill), owner,
			map[string]any{"available": true}, nil)
		for i := 0; i < 3; i++ {
			s := start.Add(time.Duration(i) * time.Hour)
			env.CreateBooking(t, booker, drill, s, s.Add(30*time.Minute))
		}

		var page []helpers.BookingResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, "/bookings?from=1&size=1", booker, nil, &page)
		require.Len(t, page, 1)
		env.MustDo(t, http.StatusOK, http.MethodGet, "/bookings?from=0&size=10", booker, nil, &page)
		require.Len(t, page, 3)
		require.True(t, page[0].Start > page[1].Start)
	})
}

// Item requests and the items answering them
func TestItemRequestAPI(t *testing.T) {
	env := SetupTestEnv(t)

	asker := env.CreateUser(t, "asker")
	helper := env.CreateUser(t, "helper")

	var req helpers.ItemRequestResponse
	env.MustDo(t, http.StatusCreated, http.MethodPost, "/requests", asker,
		map[string]string{"description": "need a ladder"}, &req)
	require.NotNil(t, req.Items)
	require.Empty(t, req.Items)

	var answer helpers.ItemResponse
	env.MustDo(t, http.StatusCreated, http.MethodPost, "/items", helper,
		map[string]any{"name": "Ladder", "description": "Three meters", "available": true, "requestId": req.ID}, &answer)
	require.NotNil(t, answer.RequestID)
	require.Equal(t, req.ID, *answer.RequestID)

	t.Run("Unknown_Request_On_Item", func(t *testing.T) {
		env.MustDo(t, http.StatusNotFound, http.MethodPost, "/items", helper,
			map[string]any{"name": "Rope", "description": "10m", "available": true, "requestId": 999}, nil)
	})

	t.Run("Own_Requests_Carry_Items", func(t *testing.T) {
		var own []helpers.ItemRequestResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, "/requests", asker, nil, &own)
		require.Len(t, own, 1)
		require.Len(t, own[0].Items, 1)
		require.Equal(t, answer.ID, own[0].Items[0].ID)
	})

	t.Run("All_Excludes_Own", func(t *testing.T) {
		var others []helpers.ItemRequestResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, "/requests/all", asker, nil, &others)
		require.Empty(t, others)

		env.MustDo(t, http.StatusOK, http.MethodGet, "/requests/all?from=0&size=5", helper, nil, &others)
		require.Len(t, others, 1)
		require.Equal(t, req.ID, others[0].ID)
	})

	t.Run("Get_One", func(t *testing.T) {
		var got helpers.ItemRequestResponse
		env.MustDo(t, http.StatusOK, http.MethodGet, fmt.Sprintf("/requests/%d", req.ID), helper, nil, &got)
		require.Equal(t, "need a ladder", got.Description)
		require.Len(t, got.Items, 1)

		env.MustDo(t, http.StatusNotFound, http.MethodGet, "/requests/999", helper, nil, nil)
	})

	t.Run("Unknown_User", func(t *testing.T) {
		env.MustDo(t, http.StatusNotFound, http.MethodGet, "/requests", 999, nil, nil)
		env.MustDo(t, http.StatusBadRequest, http.MethodGet, "/requests/all?size=0", helper, nil, nil)
	})
}
