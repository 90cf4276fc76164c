package main

// sampleJobText is the bundled posting used by `analyze --sample-job` so the
// tool can be tried without hunting for a real job description first.
const sampleJobText = `Senior Software Engineer - Platform Team
TechFlow Inc. is hiring a Senior Software Engineer to build our data platform.

Location: San Francisco, CA (hybrid, 2 days onsite)

Requirements:
- 5+ years experience as a software engineer
- Strong skills in Python, SQL, and React
- Experience with Docker and Kubernetes
- Bachelor's degree in Computer Science or related field

Nice to have:
- Experience with AWS and Terraform
- Background in data pipelines
`
