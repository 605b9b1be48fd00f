/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package common

// AnalysisRecord is the flat run summary returned by the API and persisted by the stores.
// Timestamps are Unix milliseconds and may carry a fractional part.
type AnalysisRecord struct {
	ID             int64   `json:"id,omitempty"`
	Algorithm      string  `json:"algo"`
	Items          int     `json:"items"`
	Steps          int     `json:"steps"`
	StartTime      float64 `json:"start_time"`
	EndTime        float64 `json:"end_time"`
	TotalTimeMs    float64 `json:"total_time_ms"`
	TimeComplexity string  `json:"time_complexity"`
	GraphBase64    string  `json:"graph_base64"`
	GraphPath      string  `json:"graph_path,omitempty"`
}

// RequiredRecordFields must all be present in a record submitted for saving.
var RequiredRecordFields = []string{
	"algo",
	"items",
	"steps",
	"start_time",
	"end_time",
	"total_time_ms",
	"time_complexity",
}
