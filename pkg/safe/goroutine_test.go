// Copyright 2026 Orgdesk Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package safe

import (
	"sync"
	"testing"
)

func TestDoRecovers(t *testing.T) {
	Do(func() {
		panic("boom")
	})
	// reaching here means the panic was recovered
}

func TestGoRecovers(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	Go(func() {
		defer wg.Done()
		panic("boom")
	})
	wg.Wait()
}

func TestDoRuns(t *testing.T) {
	ran := false
	Do(func() { ran = true })
	if !ran {
		t.Error("expected f to run")
	}
}
