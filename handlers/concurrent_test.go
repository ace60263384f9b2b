// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/ajax-example/auth"
	"github.com/danielhkuo/ajax-example/models"
	"github.com/danielhkuo/ajax-example/testutil"
)

// TestConcurrentWidgetSubmissions verifies that simultaneous widget posts
// all succeed and the option ends up holding one of the submitted values
func TestConcurrentWidgetSubmissions(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewAjaxHandler(st, cfg)
	nonce := testutil.Nonce(cfg, auth.AnonymousUser)

	numVisitors := 10
	submitted := make(map[string]bool, numVisitors)
	for i := 0; i < numVisitors; i++ {
		submitted[fmt.Sprintf("visitor-%d", i)] = true
	}

	var passedCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVisitors; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			data := fmt.Sprintf("caller=ajax-example-widget&example-data=visitor-%d", idx)
			req := testutil.MakeAjaxRequest(models.ActionWidget, nonce, data, nil)
			w := httptest.NewRecorder()
			h.Handle(w, req)

			if w.Code != http.StatusOK {
				return
			}
			var resp models.AjaxResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				return
			}
			if resp.Status == models.StatusPassed {
				passedCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(passedCount.Load()) != numVisitors {
		t.Errorf("Expected %d passed submissions, got %d", numVisitors, passedCount.Load())
	}

	value, ok := testutil.GetOption(t, st, models.OptionName)
	if !ok || !submitted[value] {
		t.Errorf("final value %q was never submitted", value)
	}
}

// TestConcurrentReadsDuringWrites verifies that update-widget-text never
// returns a partial or foreign value while the widget is being written
func TestConcurrentReadsDuringWrites(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewAjaxHandler(st, cfg)
	anonNonce := testutil.Nonce(cfg, auth.AnonymousUser)
	adminNonce := testutil.Nonce(cfg, auth.AdminUser)
	adminHeaders := testutil.AdminHeaders(cfg)

	values := []string{"alpha", "beta", "gamma"}
	valid := map[string]bool{"": true}
	for _, v := range values {
		valid[v] = true
	}

	var wg sync.WaitGroup
	var badReads atomic.Int32

	for i := 0; i < 15; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			data := "caller=ajax-example-widget&example-data=" + values[idx%len(values)]
			h.Handle(httptest.NewRecorder(), testutil.MakeAjaxRequest(models.ActionWidget, anonNonce, data, nil))
		}(i)
		go func() {
			defer wg.Done()
			req := testutil.MakeAjaxRequest(models.ActionUpdateWidgetText, adminNonce,
				"caller=update-widget-text&print_where=alert", adminHeaders)
			w := httptest.NewRecorder()
			h.Handle(w, req)

			var resp models.AjaxResponse
			err := json.NewDecoder(w.Body).Decode(&resp)
			if err != nil || !valid[resp.Output] || resp.Status != models.StatusPassed {
				badReads.Add(1)
			}
		}()
	}

	wg.Wait()

	if n := badReads.Load(); n != 0 {
		t.Errorf("%d reads returned an unexpected value or status", n)
	}
}
