package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DocsHandler struct{}

func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

// GetDocs serves the inline documentation page on GET /.
func (h *DocsHandler) GetDocs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
}

const docsPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>LeetCode Stats API Documentation</title>
    <style>
        :root {
            --secondary-color: #64ffda;
            --background-color: #0a192f;
            --code-background: #112240;
            --text-color: #8892b0;
            --heading-color: #ccd6f6;
            --hover-color: #233554;
        }
        body {
            font-family: 'SF Mono', 'Fira Code', 'Monaco', monospace;
            line-height: 1.6;
            color: var(--text-color);
            max-width: 960px;
            margin: 0 auto;
            padding: 3rem 1.5rem;
            background: var(--background-color);
        }
        h1, h2 {
            color: var(--heading-color);
            padding-bottom: 0.5rem;
        }
        h1 { border-bottom: 2px solid var(--secondary-color); }
        code {
            background: var(--code-background);
            color: var(--secondary-color);
            padding: 0.2rem 0.5rem;
            border-radius: 6px;
        }
        pre {
            background: var(--code-background);
            padding: 1.25rem;
            border-radius: 10px;
            overflow-x: auto;
            border: 1px solid var(--hover-color);
        }
        pre code { background: none; padding: 0; color: #e4e4e4; }
        .endpoint {
            background: var(--code-background);
            border: 1px solid var(--hover-color);
            border-radius: 10px;
            padding: 1.25rem;
            margin: 1.25rem 0;
        }
        .method {
            display: inline-block;
            padding: 0.2rem 0.5rem;
            background: #ff79c6;
            color: var(--background-color);
            border-radius: 4px;
            font-weight: bold;
            margin-right: 0.5rem;
        }
        .note {
            border-left: 4px solid var(--secondary-color);
            background: var(--hover-color);
            padding: 1rem;
            border-radius: 0 8px 8px 0;
        }
    </style>
</head>
<body>
    <h1>LeetCode Stats API Documentation</h1>
    <p>This API provides access to LeetCode user statistics, contest rankings, profile
    details and badges. All responses are JSON with a <code>status</code> of
    <code>success</code> or <code>error</code> and a <code>message</code>; errors are
    reported in the body, always with HTTP 200.</p>

    <div class="endpoint">
        <h2><span class="method">GET</span> /{username}</h2>
        <p>Solved counts per difficulty, acceptance rate, ranking, contribution
        points, reputation and the submission calendar.</p>
        <pre><code>{
    "status": "success",
    "message": "retrieved",
    "totalSolved": 100,
    "totalQuestions": 2000,
    "easySolved": 40,
    "totalEasy": 500,
    "mediumSolved": 40,
    "totalMedium": 1000,
    "hardSolved": 20,
    "totalHard": 500,
    "acceptanceRate": 65.5,
    "ranking": 100000,
    "contributionPoints": 50,
    "reputation": 100,
    "submissionCalendar": {"1711929600": 5}
}</code></pre>
    </div>

    <div class="endpoint">
        <h2><span class="method">GET</span> /{username}/contests</h2>
        <p>Contest rating, global ranking, top percentage, optional badge and the
        full per-contest history.</p>
    </div>

    <div class="endpoint">
        <h2><span class="method">GET</span> /{username}/profile</h2>
        <p>Identity and social links, contribution summary, demographic profile,
        badges, raw submission counts, submission calendar and the 20 most recent
        submissions.</p>
    </div>

    <div class="endpoint">
        <h2><span class="method">GET</span> /{username}/badges</h2>
        <p>Earned badges, upcoming badges and the active badge, if any.</p>
    </div>

    <h2>Errors</h2>
    <pre><code>{
    "status": "error",
    "message": "user does not exist",
    ...
}</code></pre>
    <p>An unknown username yields <code>user does not exist</code>; a user who never
    attended a contest yields <code>user has no contest history</code> on the
    contests endpoint; upstream failures yield <code>HTTP {code}</code>.</p>

    <div class="note">
        <p>Please be mindful of LeetCode's rate limiting policies when using this
        API.</p>
    </div>
</body>
</html>
`
