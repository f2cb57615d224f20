package email

const passwordResetTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Redefinição de senha</h2>
    <p>Olá {{.Nome}},</p>
    <p>Recebemos uma solicitação para redefinir a sua senha. Clique no botão abaixo para escolher uma nova:</p>
    <p>
        <a href="{{.ResetURL}}" style="display: inline-block; background: #2563eb; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px;">
            Redefinir senha
        </a>
    </p>
    <p>Se você não solicitou a redefinição, ignore este email. O link expira em 30 minutos.</p>
</body>
</html>
`

const welcomeTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Bem-vindo, {{.Nome}}!</h2>
    <p>Sua conta foi criada. Acompanhe o andamento do seu projeto pela plataforma.</p>
</body>
</html>
`
