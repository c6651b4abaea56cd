package channel

type Channel string

const SubmissionProgressChannel Channel = "trustpost:submission-progress"
